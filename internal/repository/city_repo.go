package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// CityRepository 城市主数据访问接口
type CityRepository interface {
	Create(ctx context.Context, city *model.City) error
	GetByID(ctx context.Context, id string) (*model.City, error)
	List(ctx context.Context, zoneID string, includeInactive bool) ([]model.City, error)
	Update(ctx context.Context, city *model.City) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type cityRepo struct {
	db *gorm.DB
}

// NewCityRepo 创建 CityRepository 实例
func NewCityRepo(db *gorm.DB) CityRepository {
	return &cityRepo{db: db}
}

func (r *cityRepo) Create(ctx context.Context, city *model.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}

func (r *cityRepo) GetByID(ctx context.Context, id string) (*model.City, error) {
	var city model.City
	err := r.db.WithContext(ctx).
		Preload("Zone").
		Where("city_id = ?", id).
		First(&city).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *cityRepo) List(ctx context.Context, zoneID string, includeInactive bool) ([]model.City, error) {
	var cities []model.City
	db := r.db.WithContext(ctx).Preload("Zone")

	if zoneID != "" {
		db = db.Where("zone_id = ?", zoneID)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *cityRepo) Update(ctx context.Context, city *model.City) error {
	return r.db.WithContext(ctx).Save(city).Error
}

func (r *cityRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.City{}).
		Where("city_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
