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

// ── 区域模块业务错误 ──

var (
	ErrZoneNotFound = errors.New("区域不存在")
)

// ZoneService 区域主数据业务接口
type ZoneService interface {
	Create(ctx context.Context, req *dto.CreateZoneRequest, callerID string) (*dto.ZoneResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ZoneResponse, error)
	List(ctx context.Context, req *dto.ZoneListRequest) ([]dto.ZoneResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateZoneRequest, callerID string) (*dto.ZoneResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type zoneService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewZoneService 创建 ZoneService 实例
func NewZoneService(repo *repository.Repository, logger *zap.Logger) ZoneService {
	return &zoneService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *zoneService) Create(ctx context.Context, req *dto.CreateZoneRequest, callerID string) (*dto.ZoneResponse, error) {
	zone := &model.Zone{
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}
	zone.CreatedBy = &callerID
	zone.UpdatedBy = &callerID

	if err := s.repo.Zone.Create(ctx, zone); err != nil {
		s.logger.Error("创建区域失败", zap.Error(err))
		return nil, err
	}

	return s.toZoneResponse(zone), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *zoneService) GetByID(ctx context.Context, id string) (*dto.ZoneResponse, error) {
	zone, err := s.repo.Zone.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		s.logger.Error("查询区域失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toZoneResponse(zone), nil
}

// ────────────────────── List ──────────────────────

func (s *zoneService) List(ctx context.Context, req *dto.ZoneListRequest) ([]dto.ZoneResponse, error) {
	zones, err := s.repo.Zone.List(ctx, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出区域失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ZoneResponse, 0, len(zones))
	for i := range zones {
		result = append(result, *s.toZoneResponse(&zones[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *zoneService) Update(ctx context.Context, id string, req *dto.UpdateZoneRequest, callerID string) (*dto.ZoneResponse, error) {
	zone, err := s.repo.Zone.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		s.logger.Error("查询区域失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Code != nil {
		zone.Code = *req.Code
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	zone.UpdatedBy = &callerID

	if err := s.repo.Zone.Update(ctx, zone); err != nil {
		s.logger.Error("更新区域失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toZoneResponse(zone), nil
}

// ────────────────────── Delete ──────────────────────

func (s *zoneService) Delete(ctx context.Context, id string, callerID string) error {
	_, err := s.repo.Zone.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrZoneNotFound
		}
		s.logger.Error("查询区域失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Zone.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除区域失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *zoneService) toZoneResponse(zone *model.Zone) *dto.ZoneResponse {
	return &dto.ZoneResponse{
		ID:        zone.ZoneID,
		Name:      zone.Name,
		Code:      zone.Code,
		IsActive:  zone.IsActive,
		CreatedAt: zone.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: zone.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
