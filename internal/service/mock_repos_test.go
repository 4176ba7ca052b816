package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/helloakshay27/rental-management-sub001/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if !includeInactive && !u.IsActive {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock ZoneRepository ──

type mockZoneRepo struct {
	zones map[string]*model.Zone
}

func newMockZoneRepo() *mockZoneRepo {
	return &mockZoneRepo{zones: make(map[string]*model.Zone)}
}

func (m *mockZoneRepo) Create(_ context.Context, zone *model.Zone) error {
	if zone.ZoneID == "" {
		zone.ZoneID = "zone-" + zone.Name
	}
	m.zones[zone.ZoneID] = zone
	return nil
}

func (m *mockZoneRepo) GetByID(_ context.Context, id string) (*model.Zone, error) {
	if z, ok := m.zones[id]; ok {
		return z, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockZoneRepo) List(_ context.Context, includeInactive bool) ([]model.Zone, error) {
	var result []model.Zone
	for _, z := range m.zones {
		if !includeInactive && !z.IsActive {
			continue
		}
		result = append(result, *z)
	}
	return result, nil
}

func (m *mockZoneRepo) Update(_ context.Context, zone *model.Zone) error {
	m.zones[zone.ZoneID] = zone
	return nil
}

func (m *mockZoneRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.zones, id)
	return nil
}

// ── Mock CityRepository ──

type mockCityRepo struct {
	cities map[string]*model.City
}

func newMockCityRepo() *mockCityRepo {
	return &mockCityRepo{cities: make(map[string]*model.City)}
}

func (m *mockCityRepo) Create(_ context.Context, city *model.City) error {
	if city.CityID == "" {
		city.CityID = "city-" + city.Name
	}
	m.cities[city.CityID] = city
	return nil
}

func (m *mockCityRepo) GetByID(_ context.Context, id string) (*model.City, error) {
	if c, ok := m.cities[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCityRepo) List(_ context.Context, zoneID string, includeInactive bool) ([]model.City, error) {
	var result []model.City
	for _, c := range m.cities {
		if zoneID != "" && (c.ZoneID == nil || *c.ZoneID != zoneID) {
			continue
		}
		if !includeInactive && !c.IsActive {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCityRepo) Update(_ context.Context, city *model.City) error {
	m.cities[city.CityID] = city
	return nil
}

func (m *mockCityRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.cities, id)
	return nil
}

// ── Mock VendorRepository ──

type mockVendorRepo struct {
	vendors map[string]*model.Vendor
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{vendors: make(map[string]*model.Vendor)}
}

func (m *mockVendorRepo) Create(_ context.Context, vendor *model.Vendor) error {
	if vendor.VendorID == "" {
		vendor.VendorID = "vendor-" + vendor.Name
	}
	m.vendors[vendor.VendorID] = vendor
	return nil
}

func (m *mockVendorRepo) GetByID(_ context.Context, id string) (*model.Vendor, error) {
	if v, ok := m.vendors[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVendorRepo) List(_ context.Context, serviceCategory string, includeInactive bool) ([]model.Vendor, error) {
	var result []model.Vendor
	for _, v := range m.vendors {
		if serviceCategory != "" && v.ServiceCategory != serviceCategory {
			continue
		}
		if !includeInactive && !v.IsActive {
			continue
		}
		result = append(result, *v)
	}
	return result, nil
}

func (m *mockVendorRepo) Update(_ context.Context, vendor *model.Vendor) error {
	m.vendors[vendor.VendorID] = vendor
	return nil
}

func (m *mockVendorRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.vendors, id)
	return nil
}

// ── Mock LandlordRepository ──

type mockLandlordRepo struct {
	landlords map[string]*model.Landlord
}

func newMockLandlordRepo() *mockLandlordRepo {
	return &mockLandlordRepo{landlords: make(map[string]*model.Landlord)}
}

func (m *mockLandlordRepo) Create(_ context.Context, landlord *model.Landlord) error {
	if landlord.LandlordID == "" {
		landlord.LandlordID = "landlord-" + landlord.Name
	}
	m.landlords[landlord.LandlordID] = landlord
	return nil
}

func (m *mockLandlordRepo) GetByID(_ context.Context, id string) (*model.Landlord, error) {
	if l, ok := m.landlords[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLandlordRepo) List(_ context.Context, includeInactive bool) ([]model.Landlord, error) {
	var result []model.Landlord
	for _, l := range m.landlords {
		if !includeInactive && !l.IsActive {
			continue
		}
		result = append(result, *l)
	}
	return result, nil
}

func (m *mockLandlordRepo) Update(_ context.Context, landlord *model.Landlord) error {
	m.landlords[landlord.LandlordID] = landlord
	return nil
}

func (m *mockLandlordRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.landlords, id)
	return nil
}

// ── Mock PropertyRepository ──

type mockPropertyRepo struct {
	properties map[string]*model.Property
}

func newMockPropertyRepo() *mockPropertyRepo {
	return &mockPropertyRepo{properties: make(map[string]*model.Property)}
}

func (m *mockPropertyRepo) Create(_ context.Context, property *model.Property) error {
	if property.PropertyID == "" {
		property.PropertyID = "prop-" + property.Name
	}
	m.properties[property.PropertyID] = property
	return nil
}

func (m *mockPropertyRepo) GetByID(_ context.Context, id string) (*model.Property, error) {
	if p, ok := m.properties[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPropertyRepo) GetByUpstreamSiteID(_ context.Context, siteID int) (*model.Property, error) {
	for _, p := range m.properties {
		if p.UpstreamSiteID != nil && *p.UpstreamSiteID == siteID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPropertyRepo) List(_ context.Context, cityID string, includeInactive bool) ([]model.Property, error) {
	var result []model.Property
	for _, p := range m.properties {
		if cityID != "" && (p.CityID == nil || *p.CityID != cityID) {
			continue
		}
		if !includeInactive && !p.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPropertyRepo) Update(_ context.Context, property *model.Property) error {
	m.properties[property.PropertyID] = property
	return nil
}

func (m *mockPropertyRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.properties, id)
	return nil
}

// ── Mock TenantRepository ──

type mockTenantRepo struct {
	tenants map[string]*model.Tenant
}

func newMockTenantRepo() *mockTenantRepo {
	return &mockTenantRepo{tenants: make(map[string]*model.Tenant)}
}

func (m *mockTenantRepo) Create(_ context.Context, tenant *model.Tenant) error {
	if tenant.TenantID == "" {
		tenant.TenantID = "tenant-" + tenant.Name
	}
	m.tenants[tenant.TenantID] = tenant
	return nil
}

func (m *mockTenantRepo) GetByID(_ context.Context, id string) (*model.Tenant, error) {
	if t, ok := m.tenants[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTenantRepo) List(_ context.Context, propertyID string, includeInactive bool) ([]model.Tenant, error) {
	var result []model.Tenant
	for _, t := range m.tenants {
		if propertyID != "" && (t.PropertyID == nil || *t.PropertyID != propertyID) {
			continue
		}
		if !includeInactive && !t.IsActive {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTenantRepo) Update(_ context.Context, tenant *model.Tenant) error {
	m.tenants[tenant.TenantID] = tenant
	return nil
}

func (m *mockTenantRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.tenants, id)
	return nil
}
