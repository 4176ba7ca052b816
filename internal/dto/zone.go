package dto

// ── 区域主数据 DTO ──

// CreateZoneRequest 创建区域请求
type CreateZoneRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Code string `json:"code" binding:"omitempty,max=20"`
}

// UpdateZoneRequest 更新区域请求
type UpdateZoneRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=100"`
	Code     *string `json:"code"      binding:"omitempty,max=20"`
	IsActive *bool   `json:"is_active"`
}

// ZoneListRequest 区域列表查询参数
type ZoneListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// ZoneResponse 区域信息响应
type ZoneResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
