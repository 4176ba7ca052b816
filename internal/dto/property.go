package dto

// ── 物业主数据 DTO ──

// CreatePropertyRequest 创建物业请求
type CreatePropertyRequest struct {
	Name           string `json:"name"             binding:"required,min=2,max=200"`
	Address        string `json:"address"          binding:"omitempty,max=500"`
	PropertyType   string `json:"property_type"    binding:"omitempty,oneof=residential commercial mixed"`
	CityID         string `json:"city_id"          binding:"omitempty,uuid"`
	LandlordID     string `json:"landlord_id"      binding:"omitempty,uuid"`
	UpstreamSiteID *int   `json:"upstream_site_id" binding:"omitempty,min=1"`
}

// UpdatePropertyRequest 更新物业请求
type UpdatePropertyRequest struct {
	Name           *string `json:"name"             binding:"omitempty,min=2,max=200"`
	Address        *string `json:"address"          binding:"omitempty,max=500"`
	PropertyType   *string `json:"property_type"    binding:"omitempty,oneof=residential commercial mixed"`
	CityID         *string `json:"city_id"          binding:"omitempty,uuid"`
	LandlordID     *string `json:"landlord_id"      binding:"omitempty,uuid"`
	UpstreamSiteID *int    `json:"upstream_site_id" binding:"omitempty,min=1"`
	IsActive       *bool   `json:"is_active"`
}

// PropertyListRequest 物业列表查询参数
type PropertyListRequest struct {
	CityID          string `form:"city_id"`
	IncludeInactive bool   `form:"include_inactive"`
}

// PropertyResponse 物业信息响应
type PropertyResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	PropertyType   string `json:"property_type,omitempty"`
	CityID         string `json:"city_id,omitempty"`
	CityName       string `json:"city_name,omitempty"`
	LandlordID     string `json:"landlord_id,omitempty"`
	LandlordName   string `json:"landlord_name,omitempty"`
	UpstreamSiteID *int   `json:"upstream_site_id,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
