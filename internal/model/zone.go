package model

// Zone 区域主数据表 — 对应 zones
type Zone struct {
	ZoneID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"zone_id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code     string `gorm:"type:varchar(20)"                               json:"code,omitempty"`
	IsActive bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Zone) TableName() string { return "zones" }
