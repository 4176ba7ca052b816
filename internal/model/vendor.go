package model

// Vendor 供应商主数据表 — 对应 vendors
type Vendor struct {
	VendorID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"vendor_id"`
	Name            string `gorm:"type:varchar(200);not null"                     json:"name"`
	ContactPerson   string `gorm:"type:varchar(100)"                              json:"contact_person,omitempty"`
	Email           string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone           string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	ServiceCategory string `gorm:"type:varchar(100)"                              json:"service_category,omitempty"`
	IsActive        bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName 指定表名
func (Vendor) TableName() string { return "vendors" }
