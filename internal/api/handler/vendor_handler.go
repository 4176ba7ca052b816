package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// VendorHandler 供应商主数据 HTTP 处理器
type VendorHandler struct {
	vendorSvc service.VendorService
}

// NewVendorHandler 创建 VendorHandler
func NewVendorHandler(vendorSvc service.VendorService) *VendorHandler {
	return &VendorHandler{vendorSvc: vendorSvc}
}

// ListVendors 获取供应商列表
// GET /api/v1/vendors
func (h *VendorHandler) ListVendors(c *gin.Context) {
	var req dto.VendorListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	vendors, err := h.vendorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": vendors})
}

// GetVendor 获取供应商详情
// GET /api/v1/vendors/:id
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "供应商ID不能为空")
		return
	}

	vendor, err := h.vendorSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleVendorError(c, err)
		return
	}

	response.OK(c, vendor)
}

// CreateVendor 创建供应商
// POST /api/v1/vendors
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleVendorError(c, err)
		return
	}

	response.Created(c, vendor)
}

// UpdateVendor 更新供应商
// PUT /api/v1/vendors/:id
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "供应商ID不能为空")
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleVendorError(c, err)
		return
	}

	response.OK(c, vendor)
}

// DeleteVendor 删除供应商
// DELETE /api/v1/vendors/:id
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "供应商ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.vendorSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleVendorError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleVendorError 统一处理供应商模块业务错误
func (h *VendorHandler) handleVendorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVendorNotFound):
		response.NotFound(c, 14001, "供应商不存在")
	default:
		response.InternalError(c)
	}
}
