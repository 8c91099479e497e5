package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/app/models"
	"github.com/campusconnect/backend/internal/app/models/dto"
	"github.com/campusconnect/backend/internal/pkg/apperrors"
	"github.com/campusconnect/backend/internal/pkg/auth"
	"github.com/campusconnect/backend/internal/pkg/email"
)

// AuthService defines the interface for authentication and profile operations
type AuthService interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

// userRepository is the persistence surface the auth service needs
type userRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.User, error)
	MarkVerified(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
}

// tokenGenerator issues signed bearer tokens
type tokenGenerator interface {
	GenerateToken(userID int64, email, role string) (string, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo    userRepository
	jwtService  tokenGenerator
	emailSender email.Service
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo userRepository, jwtService tokenGenerator, emailSender email.Service, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		jwtService:  jwtService,
		emailSender: emailSender,
		logger:      logger,
	}
}

// Register creates an unverified account and sends the verification email.
// The email send runs in the background; delivery failure never fails the
// registration.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	role, ok := models.ParseUserRole(req.Role)
	if !ok {
		return nil, apperrors.NewValidationError("Invalid role", apperrors.FieldError{
			Field:   "role",
			Message: "Role must be student or alumni",
		})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// Year only applies to students
	year := req.Year
	if role != models.RoleStudent {
		year = nil
	}

	token := uuid.New().String()
	user := &models.User{
		Name:              req.Name,
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Password:          hashed,
		Role:              role,
		Department:        req.Department,
		Year:              year,
		IsVerified:        false,
		VerificationToken: &token,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.NewConflictError("Email already registered")
		}
		return nil, err
	}

	go func() {
		if err := s.emailSender.SendVerificationEmail(user.Email, user.Name, token); err != nil {
			s.logger.Error().Err(err).
				Str("email", user.Email).
				Msg("Failed to send verification email")
		}
	}()

	s.logger.Info().Int64("userId", userID).Str("role", string(role)).Msg("User registered")

	return &dto.SignupResponse{
		Message: "Registration successful. Please check your email to verify your account.",
		UserID:  userID,
	}, nil
}

// Login authenticates a verified user and issues a bearer token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			Department: user.Department,
			Year:       user.Year,
		},
	}, nil
}

// VerifyEmail marks the token's account verified and burns the token
func (s *authServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidVerificationToken
		}
		return err
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Email verified")
	return nil
}

// GetProfile returns the full profile of the authenticated user
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProfileResponse(user)
	return &resp, nil
}

// UpdateProfile replaces the mutable profile fields
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Department = req.Department
	user.Bio = req.Bio
	user.Skills = req.Skills
	if user.Role == models.RoleStudent {
		user.Year = req.Year
	} else {
		user.Year = nil
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := dto.NewProfileResponse(updated)
	return &resp, nil
}
