package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/model"
	"github.com/helloakshay27/rental-management-sub001/internal/repository"
)

// ── 租户模块业务错误 ──

var (
	ErrTenantNotFound = errors.New("租户不存在")
	ErrBadLeaseDate   = errors.New("租期日期格式应为 YYYY-MM-DD")
	ErrLeaseInverted  = errors.New("租期结束日期早于起始日期")
)

// TenantService 租户主数据业务接口
type TenantService interface {
	Create(ctx context.Context, req *dto.CreateTenantRequest, callerID string) (*dto.TenantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TenantResponse, error)
	List(ctx context.Context, req *dto.TenantListRequest) ([]dto.TenantResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTenantRequest, callerID string) (*dto.TenantResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type tenantService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTenantService 创建 TenantService 实例
func NewTenantService(repo *repository.Repository, logger *zap.Logger) TenantService {
	return &tenantService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *tenantService) Create(ctx context.Context, req *dto.CreateTenantRequest, callerID string) (*dto.TenantResponse, error) {
	tenant := &model.Tenant{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		MonthlyRent: req.MonthlyRent,
		IsActive:    true,
	}

	if req.PropertyID != "" {
		if _, err := s.repo.Property.GetByID(ctx, req.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPropertyNotFound
			}
			s.logger.Error("查询物业失败", zap.Error(err))
			return nil, err
		}
		tenant.PropertyID = &req.PropertyID
	}

	start, end, err := parseLeaseDates(req.LeaseStart, req.LeaseEnd)
	if err != nil {
		return nil, err
	}
	tenant.LeaseStart = start
	tenant.LeaseEnd = end

	tenant.CreatedBy = &callerID
	tenant.UpdatedBy = &callerID

	if err := s.repo.Tenant.Create(ctx, tenant); err != nil {
		s.logger.Error("创建租户失败", zap.Error(err))
		return nil, err
	}

	return s.toTenantResponse(tenant), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *tenantService) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("查询租户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTenantResponse(tenant), nil
}

// ────────────────────── List ──────────────────────

func (s *tenantService) List(ctx context.Context, req *dto.TenantListRequest) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant.List(ctx, req.PropertyID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出租户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TenantResponse, 0, len(tenants))
	for i := range tenants {
		result = append(result, *s.toTenantResponse(&tenants[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *tenantService) Update(ctx context.Context, id string, req *dto.UpdateTenantRequest, callerID string) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("查询租户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.PropertyID != nil {
		if *req.PropertyID == "" {
			tenant.PropertyID = nil
			tenant.Property = nil
		} else {
			if _, err := s.repo.Property.GetByID(ctx, *req.PropertyID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrPropertyNotFound
				}
				s.logger.Error("查询物业失败", zap.Error(err))
				return nil, err
			}
			tenant.PropertyID = req.PropertyID
		}
	}
	if req.MonthlyRent != nil {
		tenant.MonthlyRent = req.MonthlyRent
	}

	if req.LeaseStart != nil || req.LeaseEnd != nil {
		startStr := formatLeaseDate(tenant.LeaseStart)
		endStr := formatLeaseDate(tenant.LeaseEnd)
		if req.LeaseStart != nil {
			startStr = *req.LeaseStart
		}
		if req.LeaseEnd != nil {
			endStr = *req.LeaseEnd
		}
		start, end, err := parseLeaseDates(startStr, endStr)
		if err != nil {
			return nil, err
		}
		tenant.LeaseStart = start
		tenant.LeaseEnd = end
	}

	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}

	tenant.UpdatedBy = &callerID

	if err := s.repo.Tenant.Update(ctx, tenant); err != nil {
		s.logger.Error("更新租户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTenantResponse(tenant), nil
}

// ────────────────────── Delete ──────────────────────

func (s *tenantService) Delete(ctx context.Context, id string, callerID string) error {
	_, err := s.repo.Tenant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTenantNotFound
		}
		s.logger.Error("查询租户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Tenant.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除租户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func parseLeaseDates(startStr, endStr string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if startStr != "" {
		t, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, nil, ErrBadLeaseDate
		}
		start = &t
	}
	if endStr != "" {
		t, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, nil, ErrBadLeaseDate
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, ErrLeaseInverted
	}

	return start, end, nil
}

func formatLeaseDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func (s *tenantService) toTenantResponse(tenant *model.Tenant) *dto.TenantResponse {
	resp := &dto.TenantResponse{
		ID:          tenant.TenantID,
		Name:        tenant.Name,
		Email:       tenant.Email,
		Phone:       tenant.Phone,
		LeaseStart:  formatLeaseDate(tenant.LeaseStart),
		LeaseEnd:    formatLeaseDate(tenant.LeaseEnd),
		MonthlyRent: tenant.MonthlyRent,
		IsActive:    tenant.IsActive,
		CreatedAt:   tenant.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   tenant.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if tenant.PropertyID != nil {
		resp.PropertyID = *tenant.PropertyID
	}
	if tenant.Property != nil {
		resp.PropertyName = tenant.Property.Name
	}
	return resp
}
