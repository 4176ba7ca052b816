package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/config"
	"github.com/helloakshay27/rental-management-sub001/internal/api/handler"
	"github.com/helloakshay27/rental-management-sub001/internal/api/middleware"
	"github.com/helloakshay27/rental-management-sub001/pkg/jwt"
	"github.com/helloakshay27/rental-management-sub001/pkg/redis"
)

// 附件通过 base64 随表单上传，全局请求体限制需要覆盖大文件场景
const maxBodyBytes = 20 << 20 // 20MB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录接口单独限流防爆破）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户模块（仅管理员）
			users := authorized.Group("/users", middleware.RoleAuth("admin"))
			{
				users.GET("", h.User.ListUsers)
				users.GET("/:id", h.User.GetUser)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			// 区域模块
			zones := authorized.Group("/zones")
			{
				zones.GET("", h.Zone.ListZones)
				zones.GET("/:id", h.Zone.GetZone)
				zones.POST("", middleware.RoleAuth("admin"), h.Zone.CreateZone)
				zones.PUT("/:id", middleware.RoleAuth("admin"), h.Zone.UpdateZone)
				zones.DELETE("/:id", middleware.RoleAuth("admin"), h.Zone.DeleteZone)
			}

			// 城市模块
			cities := authorized.Group("/cities")
			{
				cities.GET("", h.City.ListCities)
				cities.GET("/:id", h.City.GetCity)
				cities.POST("", middleware.RoleAuth("admin"), h.City.CreateCity)
				cities.PUT("/:id", middleware.RoleAuth("admin"), h.City.UpdateCity)
				cities.DELETE("/:id", middleware.RoleAuth("admin"), h.City.DeleteCity)
			}

			// 供应商模块
			vendors := authorized.Group("/vendors")
			{
				vendors.GET("", h.Vendor.ListVendors)
				vendors.GET("/:id", h.Vendor.GetVendor)
				vendors.POST("", h.Vendor.CreateVendor)
				vendors.PUT("/:id", h.Vendor.UpdateVendor)
				vendors.DELETE("/:id", middleware.RoleAuth("admin"), h.Vendor.DeleteVendor)
			}

			// 业主模块
			landlords := authorized.Group("/landlords")
			{
				landlords.GET("", h.Landlord.ListLandlords)
				landlords.GET("/:id", h.Landlord.GetLandlord)
				landlords.POST("", h.Landlord.CreateLandlord)
				landlords.PUT("/:id", h.Landlord.UpdateLandlord)
				landlords.DELETE("/:id", middleware.RoleAuth("admin"), h.Landlord.DeleteLandlord)
			}

			// 物业模块
			properties := authorized.Group("/properties")
			{
				properties.GET("", h.Property.ListProperties)
				properties.GET("/:id", h.Property.GetProperty)
				properties.POST("", h.Property.CreateProperty)
				properties.PUT("/:id", h.Property.UpdateProperty)
				properties.DELETE("/:id", middleware.RoleAuth("admin"), h.Property.DeleteProperty)
			}

			// 租户模块
			tenants := authorized.Group("/tenants")
			{
				tenants.GET("", h.Tenant.ListTenants)
				tenants.GET("/:id", h.Tenant.GetTenant)
				tenants.POST("", h.Tenant.CreateTenant)
				tenants.PUT("/:id", h.Tenant.UpdateTenant)
				tenants.DELETE("/:id", middleware.RoleAuth("admin"), h.Tenant.DeleteTenant)
			}

			// 合规记录模块（上游系统为权威数据源）
			compliances := authorized.Group("/compliances")
			{
				compliances.GET("", h.Compliance.ListCompliances)
				compliances.GET("/form", h.Compliance.GetComplianceForm)
				compliances.GET("/:id", h.Compliance.GetCompliance)
				compliances.POST("", h.Compliance.SubmitCompliance)
				compliances.PATCH("/:id/status", h.Compliance.TransitionCompliance)
			}

			// 维保工单模块（上游系统为权威数据源）
			maintenances := authorized.Group("/maintenances")
			{
				maintenances.GET("", h.Maintenance.ListMaintenances)
				maintenances.GET("/form", h.Maintenance.GetMaintenanceForm)
				maintenances.GET("/:id", h.Maintenance.GetMaintenance)
				maintenances.POST("", h.Maintenance.SubmitMaintenance)
				maintenances.PATCH("/:id/status", h.Maintenance.TransitionMaintenance)
			}

			// 附件文档模块（上游系统为权威数据源）
			documents := authorized.Group("/documents")
			{
				documents.GET("", h.Document.ListDocuments)
				documents.GET("/form", h.Document.GetDocumentForm)
				documents.GET("/:id", h.Document.GetDocument)
				documents.POST("", h.Document.SubmitDocument)
				documents.PATCH("/:id/status", h.Document.TransitionDocument)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/register", h.Export.ExportSiteRegister)
			}

			// 日历订阅模块
			calendar := authorized.Group("/calendar")
			{
				calendar.GET("/due-dates.ics", h.Calendar.DueDateFeed)
			}
		}
	}

	return r
}
