package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/usecase/services"
)

func registerTestUser(t *testing.T, svc *services.UserService) models.RegisterUserResponse {
	t.Helper()

	resp, err := svc.Register(context.Background(), models.RegisterUserRequest{
		LoginID:  "alice01",
		Password: "s3cret-pw",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	return *resp.Data
}

func TestUserServiceRegisterValidationError(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())

	resp, err := svc.Register(context.Background(), models.RegisterUserRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty register request")
	}
	if resp.Message != "validation failed" {
		t.Fatalf("expected validation failed message, got %q", resp.Message)
	}
}

func TestUserServiceRegisterAndLogin(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	created := registerTestUser(t, svc)

	if created.UID == "" {
		t.Fatal("expected a generated uid")
	}

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		LoginID:  "alice01",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Message != "login successful" {
		t.Fatalf("expected login successful, got %q", resp.Message)
	}
	if resp.Data.UID != created.UID {
		t.Fatalf("expected uid %q, got %q", created.UID, resp.Data.UID)
	}
}

func TestUserServiceRegisterDuplicateLoginID(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	registerTestUser(t, svc)

	resp, err := svc.Register(context.Background(), models.RegisterUserRequest{
		LoginID:  "alice01",
		Password: "another-pw",
		Name:     "Alice Again",
	})
	if err == nil {
		t.Fatal("expected duplicate login id to fail")
	}
	if len(resp.Errors) == 0 || resp.Errors[0] != "loginId is already taken" {
		t.Fatalf("expected loginId taken error, got %v", resp.Errors)
	}
}

func TestUserServiceLoginUnknownLoginID(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		LoginID:  "nobody",
		Password: "whatever",
	})
	if err == nil {
		t.Fatal("expected unknown login id to fail")
	}
	if resp.Message != "Login ID does not exist" {
		t.Fatalf("expected login id missing message, got %q", resp.Message)
	}
}

func TestUserServiceLoginWrongPassword(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	registerTestUser(t, svc)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		LoginID:  "alice01",
		Password: "wrong-pw",
	})
	if !errors.Is(err, commons.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if resp.Message != "Password does not match" {
		t.Fatalf("expected password mismatch message, got %q", resp.Message)
	}
}

func TestUserServiceGetUser(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())
	registerTestUser(t, svc)

	resp, err := svc.GetUser(context.Background(), "alice01")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if resp.Data.LoginID != "alice01" || resp.Data.Name != "Alice" {
		t.Fatalf("unexpected user payload: %+v", resp.Data)
	}
}

func TestUserServiceGetUserNotFound(t *testing.T) {
	svc := services.NewUserService(memory.NewUserRepository())

	_, err := svc.GetUser(context.Background(), "ghost")
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
