package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// LandlordHandler 业主主数据 HTTP 处理器
type LandlordHandler struct {
	landlordSvc service.LandlordService
}

// NewLandlordHandler 创建 LandlordHandler
func NewLandlordHandler(landlordSvc service.LandlordService) *LandlordHandler {
	return &LandlordHandler{landlordSvc: landlordSvc}
}

// ListLandlords 获取业主列表
// GET /api/v1/landlords
func (h *LandlordHandler) ListLandlords(c *gin.Context) {
	var req dto.LandlordListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	landlords, err := h.landlordSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": landlords})
}

// GetLandlord 获取业主详情
// GET /api/v1/landlords/:id
func (h *LandlordHandler) GetLandlord(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "业主ID不能为空")
		return
	}

	landlord, err := h.landlordSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleLandlordError(c, err)
		return
	}

	response.OK(c, landlord)
}

// CreateLandlord 创建业主
// POST /api/v1/landlords
func (h *LandlordHandler) CreateLandlord(c *gin.Context) {
	var req dto.CreateLandlordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	landlord, err := h.landlordSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleLandlordError(c, err)
		return
	}

	response.Created(c, landlord)
}

// UpdateLandlord 更新业主
// PUT /api/v1/landlords/:id
func (h *LandlordHandler) UpdateLandlord(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "业主ID不能为空")
		return
	}

	var req dto.UpdateLandlordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	landlord, err := h.landlordSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleLandlordError(c, err)
		return
	}

	response.OK(c, landlord)
}

// DeleteLandlord 删除业主
// DELETE /api/v1/landlords/:id
func (h *LandlordHandler) DeleteLandlord(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "业主ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.landlordSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleLandlordError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleLandlordError 统一处理业主模块业务错误
func (h *LandlordHandler) handleLandlordError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLandlordNotFound):
		response.NotFound(c, 15001, "业主不存在")
	default:
		response.InternalError(c)
	}
}
