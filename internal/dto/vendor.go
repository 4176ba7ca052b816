package dto

// ── 供应商主数据 DTO ──

// CreateVendorRequest 创建供应商请求
type CreateVendorRequest struct {
	Name            string `json:"name"             binding:"required,min=2,max=200"`
	ContactPerson   string `json:"contact_person"   binding:"omitempty,max=100"`
	Email           string `json:"email"            binding:"omitempty,email"`
	Phone           string `json:"phone"            binding:"omitempty,max=30"`
	ServiceCategory string `json:"service_category" binding:"omitempty,max=100"`
}

// UpdateVendorRequest 更新供应商请求
type UpdateVendorRequest struct {
	Name            *string `json:"name"             binding:"omitempty,min=2,max=200"`
	ContactPerson   *string `json:"contact_person"   binding:"omitempty,max=100"`
	Email           *string `json:"email"            binding:"omitempty,email"`
	Phone           *string `json:"phone"            binding:"omitempty,max=30"`
	ServiceCategory *string `json:"service_category" binding:"omitempty,max=100"`
	IsActive        *bool   `json:"is_active"`
}

// VendorListRequest 供应商列表查询参数
type VendorListRequest struct {
	ServiceCategory string `form:"service_category"`
	IncludeInactive bool   `form:"include_inactive"`
}

// VendorResponse 供应商信息响应
type VendorResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ContactPerson   string `json:"contact_person,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	ServiceCategory string `json:"service_category,omitempty"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
