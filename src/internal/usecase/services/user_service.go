package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/logger"
)

type UserService struct {
	userRepo repo_interfaces.UserRepository
}

func NewUserService(userRepo repo_interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterUserRequest) (commons.Response[models.RegisterUserResponse], error) {
	logger.Info("user service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service register validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterUserResponse]("validation failed", err.Error()), err
	}

	hashed, err := hashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		logger.Error("user service register hash password failed", err, nil)
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "failed to hash password"), err
	}

	user := domain.User{
		LoginID:      strings.TrimSpace(req.LoginID),
		PasswordHash: hashed,
		Name:         strings.TrimSpace(req.Name),
		Nickname:     strings.TrimSpace(req.Nickname),
		PhoneNumber:  strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		logger.Error("user service register repository failed", err, logger.Fields{
			"loginId": user.LoginID,
		})
		if errors.Is(err, commons.ErrDuplicateRecord) || isUniqueViolation(err) {
			return commons.ErrorResponse[models.RegisterUserResponse]("validation failed", "loginId is already taken"), err
		}
		return commons.ErrorResponse[models.RegisterUserResponse]("failed to register user", "Unable to register user right now"), err
	}

	response := models.RegisterUserResponse{
		UID:     created.UID,
		LoginID: created.LoginID,
		Name:    created.Name,
	}

	logger.Info("user service register success", logger.Fields{
		"uid":     response.UID,
		"loginId": response.LoginID,
	})

	return commons.SuccessResponse("user registered successfully", response), nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("user service login request", logger.Fields{
		"loginId": req.LoginID,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	user, err := s.userRepo.GetByLoginID(ctx, strings.TrimSpace(req.LoginID))
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoginResponse]("Login ID does not exist"), err
		}
		logger.Error("user service login lookup failed", err, logger.Fields{
			"loginId": req.LoginID,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	if !passwordMatches(user.PasswordHash, req.Password) {
		return commons.ErrorResponse[models.LoginResponse]("Password does not match"), commons.ErrUnauthorized
	}

	response := models.LoginResponse{
		UID:     user.UID,
		LoginID: user.LoginID,
		Name:    user.Name,
	}

	logger.Info("user service login success", logger.Fields{
		"uid":     user.UID,
		"loginId": user.LoginID,
	})

	return commons.SuccessResponse("login successful", response), nil
}

func (s *UserService) GetUser(ctx context.Context, loginID string) (commons.Response[models.GetUserResponse], error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return commons.ErrorResponse[models.GetUserResponse]("validation failed", "loginId is required"), fmt.Errorf("loginId is required")
	}

	user, err := s.userRepo.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.GetUserResponse]("User not found"), err
		}
		logger.Error("user service get user failed", err, logger.Fields{
			"loginId": loginID,
		})
		return commons.ErrorResponse[models.GetUserResponse]("failed to get user", "Unable to fetch user right now"), err
	}

	response := models.GetUserResponse{
		UID:         user.UID,
		LoginID:     user.LoginID,
		Name:        user.Name,
		Nickname:    user.Nickname,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse("user fetched successfully", response), nil
}
