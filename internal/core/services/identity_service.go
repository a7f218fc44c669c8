package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/SscSPs/workspace_backend/internal/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// identityService implements UserSvcFacade: registration, login and profile lookups.
type identityService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	tokenService portssvc.TokenSvcFacade
	google       portssvc.GoogleIdentityVerifier
	now          func() time.Time
}

// NewIdentityService creates a new identity service.
func NewIdentityService(userRepo portsrepo.UserRepositoryFacade, tokenService portssvc.TokenSvcFacade, google portssvc.GoogleIdentityVerifier) portssvc.UserSvcFacade {
	return &identityService{
		userRepo:     userRepo,
		tokenService: tokenService,
		google:       google,
		now:          time.Now,
	}
}

func validateRegisterRequest(req dto.RegisterRequest) error {
	provider := domain.AuthProvider(req.AuthProvider)
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.AuthProvider, validation.In(string(domain.ProviderEmail), string(domain.ProviderGoogle))),
		validation.Field(&req.Password, validation.When(provider == domain.ProviderEmail, validation.Required)),
		validation.Field(&req.GoogleToken, validation.When(provider == domain.ProviderGoogle, validation.Required)),
	)
	if err != nil {
		return apperrors.NewValidationFailedError(err.Error())
	}
	return nil
}

// Register creates an account. The existence check is a pre-check for a
// friendly error; the unique indexes on username and email decide races.
func (s *identityService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.TokenPair, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.AuthProvider == "" {
		req.AuthProvider = string(domain.ProviderEmail)
	}
	if err := validateRegisterRequest(req); err != nil {
		s.LogDebug(ctx, "Registration rejected by validation", slog.String("error", err.Error()))
		return nil, nil, err
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, nil, apperrors.NewConflictError("Email or username already in use.")
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		AuthProvider: domain.AuthProvider(req.AuthProvider),
		Preferences:  req.Preferences,
		CreatedAt:    s.now().UTC(),
	}
	if user.Preferences == nil {
		user.Preferences = domain.DefaultPreferences()
	}

	switch user.AuthProvider {
	case domain.ProviderGoogle:
		identity, err := s.google.VerifyIDToken(ctx, req.GoogleToken)
		if err != nil {
			return nil, nil, apperrors.NewUnauthorizedError("Google authentication failed.")
		}
		if !strings.EqualFold(identity.Email, req.Email) {
			s.LogInfo(ctx, "Google token email does not match registration email", slog.String("email", req.Email))
			return nil, nil, apperrors.NewUnauthorizedError("Google authentication failed.")
		}
	default:
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return nil, nil, apperrors.NewValidationFailedError("password must be at most 72 bytes")
			}
			s.LogError(ctx, err, "Failed to hash password")
			return nil, nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = &hash
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, apperrors.NewConflictError("Email or username already in use.")
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.tokenService.IssueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("auth_provider", string(user.AuthProvider)))
	return &user, tokens, nil
}

// Login never says which of email or password was wrong.
func (s *identityService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.VerifyPassword(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	tokens, err := s.tokenService.IssueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return tokens, nil
}

// LoginWithGoogle signs in an existing Google account. It never creates one.
func (s *identityService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, *domain.TokenPair, error) {
	identity, err := s.google.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, apperrors.NewUnauthorizedError("Google authentication failed.")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewUnauthorizedError("No Google account registered for this email.")
		}
		s.LogError(ctx, err, "Failed to look up user for Google login")
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.AuthProvider != domain.ProviderGoogle {
		return nil, nil, apperrors.NewUnauthorizedError("Account does not use Google sign-in.")
	}

	tokens, err := s.tokenService.IssueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "User logged in with Google", slog.String("user_id", user.UserID))
	return user, tokens, nil
}

func (s *identityService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		s.LogError(ctx, err, "Failed to get user profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
