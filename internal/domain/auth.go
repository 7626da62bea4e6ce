package domain

import (
	"context"
	"errors"
)

var (
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrRejected         = errors.New("request rejected by endpoint")
	ErrUnreachable      = errors.New("endpoint unreachable")
)

const (
	SignupPath = "/cadastro"
	LoginPath  = "/login"
)

// SignupForm holds the signup page fields for a single submission.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string `validate:"eqfield=Password"`
}

func (f SignupForm) Request() SignupRequest {
	return SignupRequest{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
	}
}

type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Request() LoginRequest {
	return LoginRequest{
		Email:    f.Email,
		Password: f.Password,
	}
}

type SignupRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type AuthGateway interface {
	Signup(ctx context.Context, req SignupRequest) error
	Login(ctx context.Context, req LoginRequest) error
}
