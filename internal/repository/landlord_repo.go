package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// LandlordRepository 业主主数据访问接口
type LandlordRepository interface {
	Create(ctx context.Context, landlord *model.Landlord) error
	GetByID(ctx context.Context, id string) (*model.Landlord, error)
	List(ctx context.Context, includeInactive bool) ([]model.Landlord, error)
	Update(ctx context.Context, landlord *model.Landlord) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type landlordRepo struct {
	db *gorm.DB
}

// NewLandlordRepo 创建 LandlordRepository 实例
func NewLandlordRepo(db *gorm.DB) LandlordRepository {
	return &landlordRepo{db: db}
}

func (r *landlordRepo) Create(ctx context.Context, landlord *model.Landlord) error {
	return r.db.WithContext(ctx).Create(landlord).Error
}

func (r *landlordRepo) GetByID(ctx context.Context, id string) (*model.Landlord, error) {
	var landlord model.Landlord
	err := r.db.WithContext(ctx).
		Where("landlord_id = ?", id).
		First(&landlord).Error
	if err != nil {
		return nil, err
	}
	return &landlord, nil
}

func (r *landlordRepo) List(ctx context.Context, includeInactive bool) ([]model.Landlord, error) {
	var landlords []model.Landlord
	db := r.db.WithContext(ctx)

	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&landlords).Error
	return landlords, err
}

func (r *landlordRepo) Update(ctx context.Context, landlord *model.Landlord) error {
	return r.db.WithContext(ctx).Save(landlord).Error
}

func (r *landlordRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Landlord{}).
		Where("landlord_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
