package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// VendorRepository 供应商主数据访问接口
type VendorRepository interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	GetByID(ctx context.Context, id string) (*model.Vendor, error)
	List(ctx context.Context, serviceCategory string, includeInactive bool) ([]model.Vendor, error)
	Update(ctx context.Context, vendor *model.Vendor) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type vendorRepo struct {
	db *gorm.DB
}

// NewVendorRepo 创建 VendorRepository 实例
func NewVendorRepo(db *gorm.DB) VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *model.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepo) GetByID(ctx context.Context, id string) (*model.Vendor, error) {
	var vendor model.Vendor
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", id).
		First(&vendor).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) List(ctx context.Context, serviceCategory string, includeInactive bool) ([]model.Vendor, error) {
	var vendors []model.Vendor
	db := r.db.WithContext(ctx)

	if serviceCategory != "" {
		db = db.Where("service_category = ?", serviceCategory)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) Update(ctx context.Context, vendor *model.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Vendor{}).
		Where("vendor_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
