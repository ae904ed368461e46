package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/core/domain"
	portssvc "github.com/mattilda/school_billing_app/internal/core/ports/services"
	"github.com/mattilda/school_billing_app/internal/core/services"
	"github.com/mattilda/school_billing_app/internal/dto"
	"github.com/mattilda/school_billing_app/internal/utils"
	"github.com/mattilda/school_billing_app/pkg/config"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
	ctx      context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "school-billing-app",
	}
	s.service = services.NewAuthService(s.userRepo, cfg)
	s.ctx = context.Background()
}

func (s *AuthServiceTestSuite) TestRegister_HashesPassword() {
	s.userRepo.On("SaveUser", s.ctx, mock.AnythingOfType("domain.User")).Return(nil)

	user, err := s.service.Register(s.ctx, dto.RegisterRequest{Username: "ada", Password: "s3cret-pw"})

	s.NoError(err)
	s.NotEmpty(user.UserID)
	s.NotEqual("s3cret-pw", user.PasswordHash)
	s.True(utils.CheckPasswordHash("s3cret-pw", user.PasswordHash))
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("s3cret-pw")
	s.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "ada", PasswordHash: hash}
	s.userRepo.On("FindUserByUsername", s.ctx, "ada").Return(user, nil)

	resp, err := s.service.Login(s.ctx, dto.LoginRequest{Username: "ada", Password: "s3cret-pw"})

	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.True(resp.ExpiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	s.NoError(err)
	s.Equal("user-1", claims.Subject)
	s.Equal("school-billing-app", claims.Issuer)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("s3cret-pw")
	s.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "ada", PasswordHash: hash}
	s.userRepo.On("FindUserByUsername", s.ctx, "ada").Return(user, nil)

	_, err = s.service.Login(s.ctx, dto.LoginRequest{Username: "ada", Password: "wrong"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	s.userRepo.On("FindUserByUsername", s.ctx, "nobody").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.Login(s.ctx, dto.LoginRequest{Username: "nobody", Password: "whatever"})

	// Unknown user and bad password are indistinguishable to the caller.
	s.ErrorIs(err, apperrors.ErrValidation)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
