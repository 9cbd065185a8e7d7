package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/usecase/service_interfaces"
)

type SavingsController struct {
	service service_interfaces.SavingsService
}

func NewSavingsController(service service_interfaces.SavingsService) *SavingsController {
	return &SavingsController{service: service}
}

func (c *SavingsController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("POST /api/savings/create", wrap(c.createSavings))
	mux.Handle("GET /api/savings/my/{ownerId}", wrap(c.getMySavings))
	mux.Handle("GET /api/savings/{accNumber}", wrap(c.getSavings))
	mux.Handle("POST /api/savings/deposit", wrap(c.deposit))
	mux.Handle("POST /api/savings/close", wrap(c.closeSavings))
}

func (c *SavingsController) createSavings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateSavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreateSavingsResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateSavings(r.Context(), req)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusCreated, response, start)
	writeJSON(w, http.StatusCreated, response)
}

func (c *SavingsController) getSavings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	accountNumber := r.PathValue("accNumber")
	logRequest(r, nil)

	response, err := c.service.GetSavings(r.Context(), accountNumber)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *SavingsController) getMySavings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ownerID := r.PathValue("ownerId")
	logRequest(r, nil)

	response, err := c.service.GetMySavings(r.Context(), ownerID)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *SavingsController) deposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SavingsDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.SavingsDepositResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Deposit(r.Context(), req)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}

func (c *SavingsController) closeSavings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CloseSavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CloseSavingsResponse]("invalid request body", err.Error()))
		return
	}
	logRequest(r, req)

	response, err := c.service.Close(r.Context(), req)
	if err != nil {
		status := errorStatus(response, err)
		logResponse(r, status, response, start)
		writeJSON(w, status, response)
		return
	}

	logResponse(r, http.StatusOK, response, start)
	writeJSON(w, http.StatusOK, response)
}
