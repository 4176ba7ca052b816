package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// TenantHandler 租户主数据 HTTP 处理器
type TenantHandler struct {
	tenantSvc service.TenantService
}

// NewTenantHandler 创建 TenantHandler
func NewTenantHandler(tenantSvc service.TenantService) *TenantHandler {
	return &TenantHandler{tenantSvc: tenantSvc}
}

// ListTenants 获取租户列表
// GET /api/v1/tenants
func (h *TenantHandler) ListTenants(c *gin.Context) {
	var req dto.TenantListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	tenants, err := h.tenantSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": tenants})
}

// GetTenant 获取租户详情
// GET /api/v1/tenants/:id
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "租户ID不能为空")
		return
	}

	tenant, err := h.tenantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTenantError(c, err)
		return
	}

	response.OK(c, tenant)
}

// CreateTenant 创建租户
// POST /api/v1/tenants
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tenant, err := h.tenantSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleTenantError(c, err)
		return
	}

	response.Created(c, tenant)
}

// UpdateTenant 更新租户
// PUT /api/v1/tenants/:id
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "租户ID不能为空")
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	tenant, err := h.tenantSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleTenantError(c, err)
		return
	}

	response.OK(c, tenant)
}

// DeleteTenant 删除租户
// DELETE /api/v1/tenants/:id
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "租户ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.tenantSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleTenantError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTenantError 统一处理租户模块业务错误
func (h *TenantHandler) handleTenantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTenantNotFound):
		response.NotFound(c, 17001, "租户不存在")
	case errors.Is(err, service.ErrPropertyNotFound):
		response.BadRequest(c, 16001, "物业不存在")
	case errors.Is(err, service.ErrBadLeaseDate):
		response.BadRequest(c, 17002, "租期日期格式应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrLeaseInverted):
		response.BadRequest(c, 17003, "租期结束日期早于起始日期")
	default:
		response.InternalError(c)
	}
}
