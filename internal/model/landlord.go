package model

// Landlord 业主主数据表 — 对应 landlords
type Landlord struct {
	LandlordID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"landlord_id"`
	Name       string `gorm:"type:varchar(200);not null"                     json:"name"`
	Email      string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone      string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	Address    string `gorm:"type:varchar(500)"                              json:"address,omitempty"`
	IsActive   bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Landlord) TableName() string { return "landlords" }
