package model

// City 城市主数据表 — 对应 cities
type City struct {
	CityID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"city_id"`
	ZoneID   *string `gorm:"type:uuid"                                      json:"zone_id,omitempty"`
	Name     string  `gorm:"type:varchar(100);not null"                     json:"name"`
	IsActive bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	// 关联
	Zone *Zone `gorm:"foreignKey:ZoneID;references:ZoneID" json:"zone,omitempty"`
}

// TableName 指定表名
func (City) TableName() string { return "cities" }
