package dto

// ── 业主主数据 DTO ──

// CreateLandlordRequest 创建业主请求
type CreateLandlordRequest struct {
	Name    string `json:"name"    binding:"required,min=2,max=200"`
	Email   string `json:"email"   binding:"omitempty,email"`
	Phone   string `json:"phone"   binding:"omitempty,max=30"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

// UpdateLandlordRequest 更新业主请求
type UpdateLandlordRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=200"`
	Email    *string `json:"email"     binding:"omitempty,email"`
	Phone    *string `json:"phone"     binding:"omitempty,max=30"`
	Address  *string `json:"address"   binding:"omitempty,max=500"`
	IsActive *bool   `json:"is_active"`
}

// LandlordListRequest 业主列表查询参数
type LandlordListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// LandlordResponse 业主信息响应
type LandlordResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
