package model

import "time"

// Tenant 租户主数据表 — 对应 tenants
type Tenant struct {
	TenantID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_id"`
	PropertyID  *string    `gorm:"type:uuid"                                      json:"property_id,omitempty"`
	Name        string     `gorm:"type:varchar(200);not null"                     json:"name"`
	Email       string     `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone       string     `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	LeaseStart  *time.Time `gorm:"type:date"                                      json:"lease_start,omitempty"`
	LeaseEnd    *time.Time `gorm:"type:date"                                      json:"lease_end,omitempty"`
	MonthlyRent *float64   `gorm:"type:numeric(12,2)"                             json:"monthly_rent,omitempty"`
	IsActive    bool       `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	// 关联
	Property *Property `gorm:"foreignKey:PropertyID;references:PropertyID" json:"property,omitempty"`
}

// TableName 指定表名
func (Tenant) TableName() string { return "tenants" }
