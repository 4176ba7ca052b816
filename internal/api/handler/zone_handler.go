package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// ZoneHandler 区域主数据 HTTP 处理器
type ZoneHandler struct {
	zoneSvc service.ZoneService
}

// NewZoneHandler 创建 ZoneHandler
func NewZoneHandler(zoneSvc service.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneSvc: zoneSvc}
}

// ListZones 获取区域列表
// GET /api/v1/zones
func (h *ZoneHandler) ListZones(c *gin.Context) {
	var req dto.ZoneListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	zones, err := h.zoneSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": zones})
}

// GetZone 获取区域详情
// GET /api/v1/zones/:id
func (h *ZoneHandler) GetZone(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "区域ID不能为空")
		return
	}

	zone, err := h.zoneSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleZoneError(c, err)
		return
	}

	response.OK(c, zone)
}

// CreateZone 创建区域
// POST /api/v1/zones
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	zone, err := h.zoneSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleZoneError(c, err)
		return
	}

	response.Created(c, zone)
}

// UpdateZone 更新区域
// PUT /api/v1/zones/:id
func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "区域ID不能为空")
		return
	}

	var req dto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	zone, err := h.zoneSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleZoneError(c, err)
		return
	}

	response.OK(c, zone)
}

// DeleteZone 删除区域
// DELETE /api/v1/zones/:id
func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "区域ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.zoneSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleZoneError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleZoneError 统一处理区域模块业务错误
func (h *ZoneHandler) handleZoneError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrZoneNotFound):
		response.NotFound(c, 12001, "区域不存在")
	default:
		response.InternalError(c)
	}
}
