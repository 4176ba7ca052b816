package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// PropertyHandler 物业主数据 HTTP 处理器
type PropertyHandler struct {
	propertySvc service.PropertyService
}

// NewPropertyHandler 创建 PropertyHandler
func NewPropertyHandler(propertySvc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertySvc: propertySvc}
}

// ListProperties 获取物业列表
// GET /api/v1/properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var req dto.PropertyListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	properties, err := h.propertySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": properties})
}

// GetProperty 获取物业详情
// GET /api/v1/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "物业ID不能为空")
		return
	}

	property, err := h.propertySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePropertyError(c, err)
		return
	}

	response.OK(c, property)
}

// CreateProperty 创建物业
// POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	property, err := h.propertySvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handlePropertyError(c, err)
		return
	}

	response.Created(c, property)
}

// UpdateProperty 更新物业
// PUT /api/v1/properties/:id
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "物业ID不能为空")
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	property, err := h.propertySvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handlePropertyError(c, err)
		return
	}

	response.OK(c, property)
}

// DeleteProperty 删除物业
// DELETE /api/v1/properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "物业ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.propertySvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handlePropertyError(c, err)
		return
	}

	response.OK(c, nil)
}

// handlePropertyError 统一处理物业模块业务错误
func (h *PropertyHandler) handlePropertyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPropertyNotFound):
		response.NotFound(c, 16001, "物业不存在")
	case errors.Is(err, service.ErrCityNotFound):
		response.BadRequest(c, 13001, "城市不存在")
	case errors.Is(err, service.ErrLandlordNotFound):
		response.BadRequest(c, 15001, "业主不存在")
	case errors.Is(err, service.ErrSiteIDTaken):
		response.Conflict(c, 16002, "该上游站点编号已绑定其他物业")
	default:
		response.InternalError(c)
	}
}
