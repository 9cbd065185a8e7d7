package models

import (
	"errors"
	"strings"
)

type RegisterUserRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (r RegisterUserRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.LoginID) == "" {
		errs = append(errs, "loginId is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if email := strings.TrimSpace(r.Email); email != "" && !strings.Contains(email, "@") {
		errs = append(errs, "email must be a valid address")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RegisterUserResponse struct {
	UID     string `json:"uid"`
	LoginID string `json:"loginId"`
	Name    string `json:"name"`
}

type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.LoginID) == "" {
		errs = append(errs, "loginId is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type LoginResponse struct {
	UID     string `json:"uid"`
	LoginID string `json:"loginId"`
	Name    string `json:"name"`
}

type GetUserResponse struct {
	UID         string `json:"uid"`
	LoginID     string `json:"loginId"`
	Name        string `json:"name"`
	Nickname    string `json:"nickname,omitempty"`
	PhoneNumber string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
