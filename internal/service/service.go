package service

import (
	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/config"
	"github.com/helloakshay27/rental-management-sub001/internal/record"
	"github.com/helloakshay27/rental-management-sub001/internal/repository"
	"github.com/helloakshay27/rental-management-sub001/pkg/jwt"
	"github.com/helloakshay27/rental-management-sub001/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Zone        ZoneService
	City        CityService
	Vendor      VendorService
	Landlord    LandlordService
	Property    PropertyService
	Tenant      TenantService
	Compliance  ComplianceService
	Maintenance MaintenanceService
	Document    AttachedDocumentService
	Export      ExportService
	Calendar    CalendarService
}

// NewService 创建 Service 聚合
//
// rdb 允许为 nil（Redis 不可用时降级运行：无令牌黑名单、无记录缓存）。
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	up Upstream,
	logger *zap.Logger,
) *Service {
	compliance := newRecordFlow(record.Compliance, up, rdb, logger)
	maintenance := newRecordFlow(record.Maintenance, up, rdb, logger)
	document := newRecordFlow(record.AttachedDocument, up, rdb, logger)

	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Zone:        NewZoneService(repo, logger),
		City:        NewCityService(repo, logger),
		Vendor:      NewVendorService(repo, logger),
		Landlord:    NewLandlordService(repo, logger),
		Property:    NewPropertyService(repo, logger),
		Tenant:      NewTenantService(repo, logger),
		Compliance:  NewComplianceService(compliance, logger),
		Maintenance: NewMaintenanceService(maintenance, logger),
		Document:    NewAttachedDocumentService(document, logger),
		Export:      NewExportService(compliance, maintenance, logger),
		Calendar:    NewCalendarService(compliance, maintenance, logger),
	}
}
