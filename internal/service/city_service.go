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

// ── 城市模块业务错误 ──

var (
	ErrCityNotFound = errors.New("城市不存在")
)

// CityService 城市主数据业务接口
type CityService interface {
	Create(ctx context.Context, req *dto.CreateCityRequest, callerID string) (*dto.CityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CityResponse, error)
	List(ctx context.Context, req *dto.CityListRequest) ([]dto.CityResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCityRequest, callerID string) (*dto.CityResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type cityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCityService 创建 CityService 实例
func NewCityService(repo *repository.Repository, logger *zap.Logger) CityService {
	return &cityService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *cityService) Create(ctx context.Context, req *dto.CreateCityRequest, callerID string) (*dto.CityResponse, error) {
	city := &model.City{
		Name:     req.Name,
		IsActive: true,
	}
	if req.ZoneID != "" {
		if _, err := s.repo.Zone.GetByID(ctx, req.ZoneID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrZoneNotFound
			}
			s.logger.Error("查询区域失败", zap.Error(err))
			return nil, err
		}
		city.ZoneID = &req.ZoneID
	}
	city.CreatedBy = &callerID
	city.UpdatedBy = &callerID

	if err := s.repo.City.Create(ctx, city); err != nil {
		s.logger.Error("创建城市失败", zap.Error(err))
		return nil, err
	}

	return s.toCityResponse(city), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *cityService) GetByID(ctx context.Context, id string) (*dto.CityResponse, error) {
	city, err := s.repo.City.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		s.logger.Error("查询城市失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toCityResponse(city), nil
}

// ────────────────────── List ──────────────────────

func (s *cityService) List(ctx context.Context, req *dto.CityListRequest) ([]dto.CityResponse, error) {
	cities, err := s.repo.City.List(ctx, req.ZoneID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出城市失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CityResponse, 0, len(cities))
	for i := range cities {
		result = append(result, *s.toCityResponse(&cities[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *cityService) Update(ctx context.Context, id string, req *dto.UpdateCityRequest, callerID string) (*dto.CityResponse, error) {
	city, err := s.repo.City.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		s.logger.Error("查询城市失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		city.Name = *req.Name
	}
	if req.ZoneID != nil {
		if *req.ZoneID == "" {
			city.ZoneID = nil
			city.Zone = nil
		} else {
			if _, err := s.repo.Zone.GetByID(ctx, *req.ZoneID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrZoneNotFound
				}
				s.logger.Error("查询区域失败", zap.Error(err))
				return nil, err
			}
			city.ZoneID = req.ZoneID
		}
	}
	if req.IsActive != nil {
		city.IsActive = *req.IsActive
	}

	city.UpdatedBy = &callerID

	if err := s.repo.City.Update(ctx, city); err != nil {
		s.logger.Error("更新城市失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toCityResponse(city), nil
}

// ────────────────────── Delete ──────────────────────

func (s *cityService) Delete(ctx context.Context, id string, callerID string) error {
	_, err := s.repo.City.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCityNotFound
		}
		s.logger.Error("查询城市失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.City.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除城市失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *cityService) toCityResponse(city *model.City) *dto.CityResponse {
	resp := &dto.CityResponse{
		ID:        city.CityID,
		Name:      city.Name,
		IsActive:  city.IsActive,
		CreatedAt: city.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: city.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if city.ZoneID != nil {
		resp.ZoneID = *city.ZoneID
	}
	if city.Zone != nil {
		resp.ZoneName = city.Zone.Name
	}
	return resp
}
