package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// TenantRepository 租户主数据访问接口
type TenantRepository interface {
	Create(ctx context.Context, tenant *model.Tenant) error
	GetByID(ctx context.Context, id string) (*model.Tenant, error)
	List(ctx context.Context, propertyID string, includeInactive bool) ([]model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type tenantRepo struct {
	db *gorm.DB
}

// NewTenantRepo 创建 TenantRepository 实例
func NewTenantRepo(db *gorm.DB) TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *model.Tenant) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r *tenantRepo) GetByID(ctx context.Context, id string) (*model.Tenant, error) {
	var tenant model.Tenant
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("tenant_id = ?", id).
		First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepo) List(ctx context.Context, propertyID string, includeInactive bool) ([]model.Tenant, error) {
	var tenants []model.Tenant
	db := r.db.WithContext(ctx).Preload("Property")

	if propertyID != "" {
		db = db.Where("property_id = ?", propertyID)
	}
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("name ASC").Find(&tenants).Error
	return tenants, err
}

func (r *tenantRepo) Update(ctx context.Context, tenant *model.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

func (r *tenantRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Where("tenant_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
