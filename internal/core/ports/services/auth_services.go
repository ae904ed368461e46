package services

import (
	"context"

	"github.com/mattilda/school_billing_app/internal/core/domain"
	"github.com/mattilda/school_billing_app/internal/dto"
)

// AuthSvcFacade defines authentication operations for staff accounts.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
