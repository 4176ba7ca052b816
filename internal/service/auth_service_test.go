package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/helloakshay27/rental-management-sub001/config"
	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/model"
	"github.com/helloakshay27/rental-management-sub001/internal/repository"
	"github.com/helloakshay27/rental-management-sub001/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *repository.Repository) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-auth-tests",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	repo := newTestRepository()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	logger := zap.NewNop()
	svc := NewAuthService(cfg, repo, jwtMgr, nil, logger)
	return svc, repo
}

func seedUser(repo *repository.Repository, email, password string, active bool) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-001",
		Name:         "测试管理员",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     active,
	}
	_ = repo.User.Create(context.Background(), user)
	return user
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "admin@example.com", "secret123", true)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("期望返回 token 对")
	}
	if result.User.Email != "admin@example.com" {
		t.Errorf("期望Email=admin@example.com，实际=%s", result.User.Email)
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("期望ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "admin@example.com", "secret123", true)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_Disabled(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "admin@example.com", "secret123", false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrUserDisabled) {
		t.Errorf("期望 ErrUserDisabled，实际: %v", err)
	}
}

// ── Refresh 测试 ──

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "admin@example.com", "secret123", true)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("期望返回新 AccessToken")
	}
}

func TestAuthService_Refresh_RejectAccessToken(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "admin@example.com", "secret123", true)

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	// access token 不能用于刷新
	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Refresh(context.Background(), &dto.RefreshRequest{
		RefreshToken: "not-a-token",
	})
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestAuthService_ChangePassword_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := seedUser(repo, "admin@example.com", "secret123", true)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 新密码生效
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "newsecret456",
	}); err != nil {
		t.Errorf("新密码登录应成功: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := seedUser(repo, "admin@example.com", "secret123", true)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newsecret456",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Errorf("期望 ErrWrongOldPassword，实际: %v", err)
	}
}

// ── Logout 测试 ──

func TestAuthService_Logout_NoRedisDegrade(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "admin@example.com", "secret123", true)

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	// Redis 缺席时登出静默降级
	if err := svc.Logout(context.Background(), login.AccessToken); err != nil {
		t.Errorf("无 Redis 时 Logout 应降级为空操作: %v", err)
	}
}
