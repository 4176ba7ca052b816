package dto

// ── 城市主数据 DTO ──

// CreateCityRequest 创建城市请求
type CreateCityRequest struct {
	Name   string `json:"name"    binding:"required,min=2,max=100"`
	ZoneID string `json:"zone_id" binding:"omitempty,uuid"`
}

// UpdateCityRequest 更新城市请求
type UpdateCityRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=100"`
	ZoneID   *string `json:"zone_id"   binding:"omitempty,uuid"`
	IsActive *bool   `json:"is_active"`
}

// CityListRequest 城市列表查询参数
type CityListRequest struct {
	ZoneID          string `form:"zone_id"`
	IncludeInactive bool   `form:"include_inactive"`
}

// CityResponse 城市信息响应
type CityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ZoneID    string `json:"zone_id,omitempty"`
	ZoneName  string `json:"zone_name,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
