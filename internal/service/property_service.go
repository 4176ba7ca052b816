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

// ── 物业模块业务错误 ──

var (
	ErrPropertyNotFound = errors.New("物业不存在")
	ErrSiteIDTaken      = errors.New("该上游站点编号已绑定其他物业")
)

// PropertyService 物业主数据业务接口
type PropertyService interface {
	Create(ctx context.Context, req *dto.CreatePropertyRequest, callerID string) (*dto.PropertyResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error)
	List(ctx context.Context, req *dto.PropertyListRequest) ([]dto.PropertyResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePropertyRequest, callerID string) (*dto.PropertyResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type propertyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPropertyService 创建 PropertyService 实例
func NewPropertyService(repo *repository.Repository, logger *zap.Logger) PropertyService {
	return &propertyService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *propertyService) Create(ctx context.Context, req *dto.CreatePropertyRequest, callerID string) (*dto.PropertyResponse, error) {
	property := &model.Property{
		Name:         req.Name,
		Address:      req.Address,
		PropertyType: req.PropertyType,
		IsActive:     true,
	}

	if req.CityID != "" {
		if _, err := s.repo.City.GetByID(ctx, req.CityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCityNotFound
			}
			s.logger.Error("查询城市失败", zap.Error(err))
			return nil, err
		}
		property.CityID = &req.CityID
	}
	if req.LandlordID != "" {
		if _, err := s.repo.Landlord.GetByID(ctx, req.LandlordID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLandlordNotFound
			}
			s.logger.Error("查询业主失败", zap.Error(err))
			return nil, err
		}
		property.LandlordID = &req.LandlordID
	}
	if req.UpstreamSiteID != nil {
		if err := s.ensureSiteIDFree(ctx, *req.UpstreamSiteID, ""); err != nil {
			return nil, err
		}
		property.UpstreamSiteID = req.UpstreamSiteID
	}

	property.CreatedBy = &callerID
	property.UpdatedBy = &callerID

	if err := s.repo.Property.Create(ctx, property); err != nil {
		s.logger.Error("创建物业失败", zap.Error(err))
		return nil, err
	}

	return s.toPropertyResponse(property), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *propertyService) GetByID(ctx context.Context, id string) (*dto.PropertyResponse, error) {
	property, err := s.repo.Property.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("查询物业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toPropertyResponse(property), nil
}

// ────────────────────── List ──────────────────────

func (s *propertyService) List(ctx context.Context, req *dto.PropertyListRequest) ([]dto.PropertyResponse, error) {
	properties, err := s.repo.Property.List(ctx, req.CityID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("列出物业失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		result = append(result, *s.toPropertyResponse(&properties[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *propertyService) Update(ctx context.Context, id string, req *dto.UpdatePropertyRequest, callerID string) (*dto.PropertyResponse, error) {
	property, err := s.repo.Property.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("查询物业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		property.Name = *req.Name
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.CityID != nil {
		if *req.CityID == "" {
			property.CityID = nil
			property.City = nil
		} else {
			if _, err := s.repo.City.GetByID(ctx, *req.CityID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrCityNotFound
				}
				s.logger.Error("查询城市失败", zap.Error(err))
				return nil, err
			}
			property.CityID = req.CityID
		}
	}
	if req.LandlordID != nil {
		if *req.LandlordID == "" {
			property.LandlordID = nil
			property.Landlord = nil
		} else {
			if _, err := s.repo.Landlord.GetByID(ctx, *req.LandlordID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrLandlordNotFound
				}
				s.logger.Error("查询业主失败", zap.Error(err))
				return nil, err
			}
			property.LandlordID = req.LandlordID
		}
	}
	if req.UpstreamSiteID != nil {
		if err := s.ensureSiteIDFree(ctx, *req.UpstreamSiteID, property.PropertyID); err != nil {
			return nil, err
		}
		property.UpstreamSiteID = req.UpstreamSiteID
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	property.UpdatedBy = &callerID

	if err := s.repo.Property.Update(ctx, property); err != nil {
		s.logger.Error("更新物业失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toPropertyResponse(property), nil
}

// ────────────────────── Delete ──────────────────────

func (s *propertyService) Delete(ctx context.Context, id string, callerID string) error {
	_, err := s.repo.Property.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		s.logger.Error("查询物业失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Property.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("删除物业失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// ensureSiteIDFree 上游站点编号与本地物业一对一绑定
func (s *propertyService) ensureSiteIDFree(ctx context.Context, siteID int, selfID string) error {
	existing, err := s.repo.Property.GetByUpstreamSiteID(ctx, siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("查询物业失败", zap.Int("site_id", siteID), zap.Error(err))
		return err
	}
	if existing.PropertyID != selfID {
		return ErrSiteIDTaken
	}
	return nil
}

func (s *propertyService) toPropertyResponse(property *model.Property) *dto.PropertyResponse {
	resp := &dto.PropertyResponse{
		ID:             property.PropertyID,
		Name:           property.Name,
		Address:        property.Address,
		PropertyType:   property.PropertyType,
		UpstreamSiteID: property.UpstreamSiteID,
		IsActive:       property.IsActive,
		CreatedAt:      property.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      property.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if property.CityID != nil {
		resp.CityID = *property.CityID
	}
	if property.City != nil {
		resp.CityName = property.City.Name
	}
	if property.LandlordID != nil {
		resp.LandlordID = *property.LandlordID
	}
	if property.Landlord != nil {
		resp.LandlordName = property.Landlord.Name
	}
	return resp
}
