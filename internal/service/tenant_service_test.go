package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/model"
	"github.com/helloakshay27/rental-management-sub001/internal/repository"
)

// ── 测试辅助 ──

func setupTestTenantService() (TenantService, *repository.Repository) {
	repo := newTestRepository()
	svc := NewTenantService(repo, zap.NewNop())
	return svc, repo
}

// ── Create 测试 ──

func TestTenantService_Create_Success(t *testing.T) {
	svc, repo := setupTestTenantService()

	propRepo := repo.Property.(*mockPropertyRepo)
	propRepo.properties["prop-001"] = &model.Property{
		PropertyID: "prop-001",
		Name:       "滨江公寓",
		IsActive:   true,
	}

	rent := 3500.0
	result, err := svc.Create(context.Background(), &dto.CreateTenantRequest{
		Name:        "张三",
		PropertyID:  "prop-001",
		LeaseStart:  "2026-01-01",
		LeaseEnd:    "2026-12-31",
		MonthlyRent: &rent,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.LeaseStart != "2026-01-01" {
		t.Errorf("期望LeaseStart=2026-01-01，实际=%s", result.LeaseStart)
	}
	if result.LeaseEnd != "2026-12-31" {
		t.Errorf("期望LeaseEnd=2026-12-31，实际=%s", result.LeaseEnd)
	}
}

func TestTenantService_Create_BadLeaseDate(t *testing.T) {
	svc, _ := setupTestTenantService()

	_, err := svc.Create(context.Background(), &dto.CreateTenantRequest{
		Name:       "张三",
		LeaseStart: "01/01/2026",
	}, "admin-001")
	if !errors.Is(err, ErrBadLeaseDate) {
		t.Errorf("期望 ErrBadLeaseDate，实际: %v", err)
	}
}

func TestTenantService_Create_LeaseInverted(t *testing.T) {
	svc, _ := setupTestTenantService()

	_, err := svc.Create(context.Background(), &dto.CreateTenantRequest{
		Name:       "张三",
		LeaseStart: "2026-12-31",
		LeaseEnd:   "2026-01-01",
	}, "admin-001")
	if !errors.Is(err, ErrLeaseInverted) {
		t.Errorf("期望 ErrLeaseInverted，实际: %v", err)
	}
}

func TestTenantService_Create_UnknownProperty(t *testing.T) {
	svc, _ := setupTestTenantService()

	_, err := svc.Create(context.Background(), &dto.CreateTenantRequest{
		Name:       "张三",
		PropertyID: "nonexistent",
	}, "admin-001")
	if !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("期望 ErrPropertyNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestTenantService_Update_LeaseEndOnly(t *testing.T) {
	svc, repo := setupTestTenantService()

	_, err := svc.Create(context.Background(), &dto.CreateTenantRequest{
		Name:       "张三",
		LeaseStart: "2026-01-01",
		LeaseEnd:   "2026-06-30",
	}, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	tenantRepo := repo.Tenant.(*mockTenantRepo)
	var tenantID string
	for id := range tenantRepo.tenants {
		tenantID = id
	}

	// 只改结束日期，与既有起始日期联合校验
	newEnd := "2025-12-31"
	_, err = svc.Update(context.Background(), tenantID, &dto.UpdateTenantRequest{
		LeaseEnd: &newEnd,
	}, "admin-001")
	if !errors.Is(err, ErrLeaseInverted) {
		t.Errorf("期望 ErrLeaseInverted，实际: %v", err)
	}

	goodEnd := "2026-12-31"
	result, err := svc.Update(context.Background(), tenantID, &dto.UpdateTenantRequest{
		LeaseEnd: &goodEnd,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.LeaseEnd != "2026-12-31" {
		t.Errorf("期望LeaseEnd=2026-12-31，实际=%s", result.LeaseEnd)
	}
	if result.LeaseStart != "2026-01-01" {
		t.Errorf("起始日期应保持不变，实际=%s", result.LeaseStart)
	}
}
