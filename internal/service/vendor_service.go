package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/model"
	"github.com/helloakshay27/rental-management-sub001/internal/repository"
)

// ── 供应商模块业务错误 ──

var (
	ErrVendorNotFound = errors.New("供应商不存在")
)

// VendorService 供应商主数据业务接口
type VendorService interface {
	Create(ctx context.Context, req *dto.CreateVendorRequest, callerID string) (*dto.VendorResponse, error)
	GetByID(ctx context.Context, id string) (*dto.VendorResponse, error)
	List(ctx context.Context, req *dto.VendorListRequest) ([]dto.VendorResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateVendorRequest, callerID string) (*dto.VendorResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type vendorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVendorService 创建 VendorService 实例
func NewVendorService(repo *repository.Repository, logger *zap.Logger) VendorService {
	return &vendorService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *vendorService) Create(ctx context.Context, req *dto.CreateVendorRequest, callerID string) (*dto.VendorResponse, error) {
	vendor := &model.Vendor{
		Name:            req.Name,
		ContactPerson:   req.ContactPerson,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceCategory: req.ServiceCategory,
		IsActive:        true,
	}
	vendor.CreatedBy = &callerID
	vendor.UpdatedBy = &callerID

	if err := s.repo.Vendor.Create(ctx, vendor); err != nil {
		s.logger.Error("创建供应商失败", zap.Error(err))
		return nil, err
	}

	return s.toVendorResponse(vendor), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *vendorService) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := s.repo.Vendor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		s.logger.Error("查询供应商失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toVendorResponse(vendor), nil
}

// ────────────────────── List ──────────────────────

func (s *vendorService) List(ctx context.Context, req *dto.VendorListRequest) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.Vendor.List(ctx, req.ServiceCategory, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出供应商失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		result = append(result, *s.toVendorResponse(&vendors[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *vendorService) Update(ctx context.Context, id string, req *dto.UpdateVendorRequest, callerID string) (*dto.VendorResponse, error) {
	vendor, err := s.repo.Vendor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		s.logger.Error("查询供应商失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.ServiceCategory != nil {
		vendor.ServiceCategory = *req.ServiceCategory
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	vendor.UpdatedBy = &callerID

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.logger.Error("更新供应商失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toVendorResponse(vendor), nil
}

// ────────────────────── Delete ──────────────────────

func (s *vendorService) Delete(ctx context.Context, id string, callerID string) error {
	_, err := s.repo.Vendor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendorNotFound
		}
		s.logger.Error("查询供应商失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Vendor.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除供应商失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *vendorService) toVendorResponse(vendor *model.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:              vendor.VendorID,
		Name:            vendor.Name,
		ContactPerson:   vendor.ContactPerson,
		Email:           vendor.Email,
		Phone:           vendor.Phone,
		ServiceCategory: vendor.ServiceCategory,
		IsActive:        vendor.IsActive,
		CreatedAt:       vendor.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:       vendor.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
