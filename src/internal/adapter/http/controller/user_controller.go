package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/usecase/service_interfaces"
)

type UserController struct {
	service service_interfaces.UserService
}

func NewUserController(service service_interfaces.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("POST /api/user/register", wrap(c.register))
	mux.Handle("POST /api/user/login", wrap(c.login))
	mux.Handle("GET /api/user/{loginId}", wrap(c.getUser))
}

func (c *UserController) register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.RegisterUserResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Register(r.Context(), req)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

func (c *UserController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LoginResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Login(r.Context(), req)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *UserController) getUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	loginID := r.PathValue("loginId")
	logRequest(r, nil)

	response, err := c.service.GetUser(r.Context(), loginID)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}
