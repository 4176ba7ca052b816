package handler

import "github.com/helloakshay27/rental-management-sub001/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Zone        *ZoneHandler
	City        *CityHandler
	Vendor      *VendorHandler
	Landlord    *LandlordHandler
	Property    *PropertyHandler
	Tenant      *TenantHandler
	Compliance  *ComplianceHandler
	Maintenance *MaintenanceHandler
	Document    *DocumentHandler
	Export      *ExportHandler
	Calendar    *CalendarHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, svc.User),
		User:        NewUserHandler(svc.User),
		Zone:        NewZoneHandler(svc.Zone),
		City:        NewCityHandler(svc.City),
		Vendor:      NewVendorHandler(svc.Vendor),
		Landlord:    NewLandlordHandler(svc.Landlord),
		Property:    NewPropertyHandler(svc.Property),
		Tenant:      NewTenantHandler(svc.Tenant),
		Compliance:  NewComplianceHandler(svc.Compliance),
		Maintenance: NewMaintenanceHandler(svc.Maintenance),
		Document:    NewDocumentHandler(svc.Document),
		Export:      NewExportHandler(svc.Export),
		Calendar:    NewCalendarHandler(svc.Calendar),
	}
}
