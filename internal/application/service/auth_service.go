package service

import (
	"context"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/internal/domain/repository"
	"github.com/autolanka/vsms-api/pkg/apperror"
	"github.com/autolanka/vsms-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo            repository.UserRepository
	tenantRepo          repository.TenantRepository
	jwtManager          *utils.JWTManager
	registrationEnabled bool
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	jwtManager *utils.JWTManager,
	registrationEnabled bool,
) *AuthService {
	return &AuthService{
		userRepo:            userRepo,
		tenantRepo:          tenantRepo,
		jwtManager:          jwtManager,
		registrationEnabled: registrationEnabled,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	ServiceToken string
	RefreshToken string
}

// Login authenticates a staff account and returns a service token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	var v apperror.Violations
	v.AddIf(input.Email == "", "email", "email is required")
	v.AddIf(input.Password == "", "password", "password is required")
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	if user.Status != enum.AccountStatusActive {
		return nil, apperror.ErrAccountInactive
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role, user.TenantID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: user, ServiceToken: token, RefreshToken: refresh}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a staff account. Self-registration is disabled by default;
// accounts are provisioned by administrators.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	if !s.registrationEnabled {
		return nil, apperror.NewAppError(403, "Registration is disabled. Please contact an administrator.")
	}

	var v apperror.Violations
	v.AddIf(input.Name == "", "name", "name is required")
	v.AddIf(input.Email == "", "email", "email is required")
	v.AddIf(len(input.Password) < 8, "password", "password must be at least 8 characters")
	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewAppError(409, "Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.First(ctx)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     "staff",
		Status:   enum.AccountStatusActive,
	}
	if tenant != nil {
		user.TenantID = &tenant.ID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns the authenticated account's profile
func (s *AuthService) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
