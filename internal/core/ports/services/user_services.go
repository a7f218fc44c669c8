package services

import (
	"context"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
	"github.com/SscSPs/workspace_backend/internal/dto"
)

// UserRegistrationSvc defines account creation.
type UserRegistrationSvc interface {
	// Register creates an email or Google account and issues both tokens.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.TokenPair, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	// LoginWithGoogle authenticates an existing Google account with a Google ID token.
	LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, *domain.TokenPair, error)
}

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetProfile retrieves a user by ID.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserRegistrationSvc
	UserAuthSvc
	UserReaderSvc
}
