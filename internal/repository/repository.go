package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User     UserRepository
	Zone     ZoneRepository
	City     CityRepository
	Vendor   VendorRepository
	Landlord LandlordRepository
	Property PropertyRepository
	Tenant   TenantRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Zone:     NewZoneRepo(db),
		City:     NewCityRepo(db),
		Vendor:   NewVendorRepo(db),
		Landlord: NewLandlordRepo(db),
		Property: NewPropertyRepo(db),
		Tenant:   NewTenantRepo(db),
	}
}
