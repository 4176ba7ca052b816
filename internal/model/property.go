package model

// Property 物业主数据表 — 对应 properties
// UpstreamSiteID 对应上游物业管理系统中的 site 编号，
// 合规记录与维修工单通过它关联到上游资源
type Property struct {
	PropertyID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"property_id"`
	Name           string  `gorm:"type:varchar(200);not null"                     json:"name"`
	Address        string  `gorm:"type:varchar(500)"                              json:"address,omitempty"`
	PropertyType   string  `gorm:"type:varchar(50)"                               json:"property_type,omitempty"` // residential | commercial | mixed
	CityID         *string `gorm:"type:uuid"                                      json:"city_id,omitempty"`
	LandlordID     *string `gorm:"type:uuid"                                      json:"landlord_id,omitempty"`
	UpstreamSiteID *int    `json:"upstream_site_id,omitempty"`
	IsActive       bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	// 关联
	City     *City     `gorm:"foreignKey:CityID;references:CityID"             json:"city,omitempty"`
	Landlord *Landlord `gorm:"foreignKey:LandlordID;references:LandlordID"     json:"landlord,omitempty"`
}

// TableName 指定表名
func (Property) TableName() string { return "properties" }
