package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// ZoneRepository 区域主数据访问接口
type ZoneRepository interface {
	Create(ctx context.Context, zone *model.Zone) error
	GetByID(ctx context.Context, id string) (*model.Zone, error)
	List(ctx context.Context, includeInactive bool) ([]model.Zone, error)
	Update(ctx context.Context, zone *model.Zone) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type zoneRepo struct {
	db *gorm.DB
}

// NewZoneRepo 创建 ZoneRepository 实例
func NewZoneRepo(db *gorm.DB) ZoneRepository {
	return &zoneRepo{db: db}
}

func (r *zoneRepo) Create(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *zoneRepo) GetByID(ctx context.Context, id string) (*model.Zone, error) {
	var zone model.Zone
	err := r.db.WithContext(ctx).
		Where("zone_id = ?", id).
		First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) List(ctx context.Context, includeInactive bool) ([]model.Zone, error) {
	var zones []model.Zone
	db := r.db.WithContext(ctx)

	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&zones).Error
	return zones, err
}

func (r *zoneRepo) Update(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}

func (r *zoneRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Zone{}).
		Where("zone_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
