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

// ── 业主模块业务错误 ──

var (
	ErrLandlordNotFound = errors.New("业主不存在")
)

// LandlordService 业主主数据业务接口
type LandlordService interface {
	Create(ctx context.Context, req *dto.CreateLandlordRequest, callerID string) (*dto.LandlordResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LandlordResponse, error)
	List(ctx context.Context, req *dto.LandlordListRequest) ([]dto.LandlordResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateLandlordRequest, callerID string) (*dto.LandlordResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type landlordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLandlordService 创建 LandlordService 实例
func NewLandlordService(repo *repository.Repository, logger *zap.Logger) LandlordService {
	return &landlordService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *landlordService) Create(ctx context.Context, req *dto.CreateLandlordRequest, callerID string) (*dto.LandlordResponse, error) {
	landlord := &model.Landlord{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: true,
	}
	landlord.CreatedBy = &callerID
	landlord.UpdatedBy = &callerID

	if err := s.repo.Landlord.Create(ctx, landlord); err != nil {
		s.logger.Error("创建业主失败", zap.Error(err))
		return nil, err
	}

	return s.toLandlordResponse(landlord), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *landlordService) GetByID(ctx context.Context, id string) (*dto.LandlordResponse, error) {
	landlord, err := s.repo.Landlord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandlordNotFound
		}
		s.logger.Error("查询业主失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLandlordResponse(landlord), nil
}

// ────────────────────── List ──────────────────────

func (s *landlordService) List(ctx context.Context, req *dto.LandlordListRequest) ([]dto.LandlordResponse, error) {
	landlords, err := s.repo.Landlord.List(ctx, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出业主失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LandlordResponse, 0, len(landlords))
	for i := range landlords {
		result = append(result, *s.toLandlordResponse(&landlords[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *landlordService) Update(ctx context.Context, id string, req *dto.UpdateLandlordRequest, callerID string) (*dto.LandlordResponse, error) {
	landlord, err := s.repo.Landlord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLandlordNotFound
		}
		s.logger.Error("查询业主失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		landlord.Name = *req.Name
	}
	if req.Email != nil {
		landlord.Email = *req.Email
	}
	if req.Phone != nil {
		landlord.Phone = *req.Phone
	}
	if req.Address != nil {
		landlord.Address = *req.Address
	}
	if req.IsActive != nil {
		landlord.IsActive = *req.IsActive
	}

	landlord.UpdatedBy = &callerID

	if err := s.repo.Landlord.Update(ctx, landlord); err != nil {
		s.logger.Error("更新业主失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLandlordResponse(landlord), nil
}

// ────────────────────── Delete ──────────────────────

func (s *landlordService) Delete(ctx context.Context, id string, callerID string) error {
	_, err := s.repo.Landlord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLandlordNotFound
		}
		s.logger.Error("查询业主失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Landlord.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除业主失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *landlordService) toLandlordResponse(landlord *model.Landlord) *dto.LandlordResponse {
	return &dto.LandlordResponse{
		ID:        landlord.LandlordID,
		Name:      landlord.Name,
		Email:     landlord.Email,
		Phone:     landlord.Phone,
		Address:   landlord.Address,
		IsActive:  landlord.IsActive,
		CreatedAt: landlord.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: landlord.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
