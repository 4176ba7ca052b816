package dto

// ── 租户主数据 DTO ──

// CreateTenantRequest 创建租户请求
type CreateTenantRequest struct {
	Name        string   `json:"name"         binding:"required,min=2,max=100"`
	Email       string   `json:"email"        binding:"omitempty,email"`
	Phone       string   `json:"phone"        binding:"omitempty,max=30"`
	PropertyID  string   `json:"property_id"  binding:"omitempty,uuid"`
	LeaseStart  string   `json:"lease_start"  binding:"omitempty,datetime=2006-01-02"`
	LeaseEnd    string   `json:"lease_end"    binding:"omitempty,datetime=2006-01-02"`
	MonthlyRent *float64 `json:"monthly_rent" binding:"omitempty,min=0"`
}

// UpdateTenantRequest 更新租户请求
type UpdateTenantRequest struct {
	Name        *string  `json:"name"         binding:"omitempty,min=2,max=100"`
	Email       *string  `json:"email"        binding:"omitempty,email"`
	Phone       *string  `json:"phone"        binding:"omitempty,max=30"`
	PropertyID  *string  `json:"property_id"  binding:"omitempty,uuid"`
	LeaseStart  *string  `json:"lease_start"  binding:"omitempty,datetime=2006-01-02"`
	LeaseEnd    *string  `json:"lease_end"    binding:"omitempty,datetime=2006-01-02"`
	MonthlyRent *float64 `json:"monthly_rent" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"is_active"`
}

// TenantListRequest 租户列表查询参数
type TenantListRequest struct {
	PropertyID      string `form:"property_id"`
	IncludeInactive bool   `form:"include_inactive"`
}

// TenantResponse 租户信息响应
type TenantResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	PropertyID   string   `json:"property_id,omitempty"`
	PropertyName string   `json:"property_name,omitempty"`
	LeaseStart   string   `json:"lease_start,omitempty"`
	LeaseEnd     string   `json:"lease_end,omitempty"`
	MonthlyRent  *float64 `json:"monthly_rent,omitempty"`
	IsActive     bool     `json:"is_active"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}
