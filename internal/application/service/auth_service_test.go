package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/autolanka/vsms-api/internal/domain/entity"
	"github.com/autolanka/vsms-api/internal/domain/enum"
	"github.com/autolanka/vsms-api/pkg/apperror"
	"github.com/autolanka/vsms-api/pkg/utils"
)

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID uint
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User), nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		r.nextID = u.ID + 1
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user
	return nil
}

type fakeTenantRepo struct {
	tenants []*entity.Tenant
}

func (r *fakeTenantRepo) GetByID(ctx context.Context, id uint) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) First(ctx context.Context) (*entity.Tenant, error) {
	if len(r.tenants) == 0 {
		return nil, nil
	}
	return r.tenants[0], nil
}

func newAuthFixture(t *testing.T, registrationEnabled bool) (*AuthService, *fakeUserRepo) {
	t.Helper()
	hashed, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	tenantID := uint(1)
	userRepo := newFakeUserRepo(&entity.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: hashed,
		Role:     "admin",
		Status:   enum.AccountStatusActive,
		TenantID: &tenantID,
	})
	tenantRepo := &fakeTenantRepo{tenants: []*entity.Tenant{{ID: 1, Name: "Default Dealership"}}}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, tenantRepo, jwtManager, registrationEnabled), userRepo
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "admin@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.ServiceToken == "" {
		t.Error("empty service token")
	}
	if userID, err := svc.jwtManager.ValidateRefreshToken(out.RefreshToken); err != nil || userID != out.User.ID {
		t.Errorf("refresh token (user %d, err %v), want user %d", userID, err, out.User.ID)
	}

	claims, err := svc.jwtManager.ValidateAccessToken(out.ServiceToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != out.User.ID || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TenantID == nil || *claims.TenantID != 1 {
		t.Errorf("claim tenant = %v, want 1", claims.TenantID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "admin@example.com", Password: "wrong"})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "nobody@example.com", Password: "whatever"})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, userRepo := newAuthFixture(t, false)
	userRepo.users["admin@example.com"].Status = enum.AccountStatusInactive

	_, err := svc.Login(context.Background(), &LoginInput{Email: "admin@example.com", Password: "correct-horse"})
	if !errors.Is(err, apperror.ErrAccountInactive) {
		t.Errorf("err = %v, want ErrAccountInactive", err)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	_, err := svc.Login(context.Background(), &LoginInput{})
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 || len(appErr.Errors) != 2 {
		t.Errorf("err = %+v, want 422 with both field violations", appErr)
	}
}

func TestRegisterDisabledByDefault(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name: "New Staff", Email: "staff@example.com", Password: "longenough",
	})
	if apperror.GetAppError(err).Code != 403 {
		t.Errorf("err = %v, want 403", err)
	}
}

func TestRegisterAssignsDefaultTenant(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name: "New Staff", Email: "staff@example.com", Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != "staff" {
		t.Errorf("role = %q, want staff", user.Role)
	}
	if user.TenantID == nil || *user.TenantID != 1 {
		t.Errorf("tenant = %v, want 1", user.TenantID)
	}
	if user.Password == "longenough" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name: "Dup", Email: "admin@example.com", Password: "longenough",
	})
	if apperror.GetAppError(err).Code != 409 {
		t.Errorf("err = %v, want 409", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name: "New", Email: "short@example.com", Password: "short",
	})
	if apperror.GetAppError(err).Code != 422 {
		t.Errorf("err = %v, want 422", err)
	}
}
