package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// PropertyRepository 物业主数据访问接口
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	GetByID(ctx context.Context, id string) (*model.Property, error)
	GetByUpstreamSiteID(ctx context.Context, siteID int) (*model.Property, error)
	List(ctx context.Context, cityID string, includeInactive bool) ([]model.Property, error)
	Update(ctx context.Context, property *model.Property) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type propertyRepo struct {
	db *gorm.DB
}

// NewPropertyRepo 创建 PropertyRepository 实例
func NewPropertyRepo(db *gorm.DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Landlord").
		Where("property_id = ?", id).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepo) GetByUpstreamSiteID(ctx context.Context, siteID int) (*model.Property, error) {
	var property model.Property
	err := r.db.WithContext(ctx).
		Where("upstream_site_id = ?", siteID).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepo) List(ctx context.Context, cityID string, includeInactive bool) ([]model.Property, error) {
	var properties []model.Property
	db := r.db.WithContext(ctx).Preload("City").Preload("Landlord")

	if cityID != "" {
		db = db.Where("city_id = ?", cityID)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&properties).Error
	return properties, err
}

func (r *propertyRepo) Update(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Property{}).
		Where("property_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
