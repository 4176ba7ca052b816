package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// CityHandler 城市主数据 HTTP 处理器
type CityHandler struct {
	citySvc service.CityService
}

// NewCityHandler 创建 CityHandler
func NewCityHandler(citySvc service.CityService) *CityHandler {
	return &CityHandler{citySvc: citySvc}
}

// ListCities 获取城市列表
// GET /api/v1/cities
func (h *CityHandler) ListCities(c *gin.Context) {
	var req dto.CityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cities, err := h.citySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": cities})
}

// GetCity 获取城市详情
// GET /api/v1/cities/:id
func (h *CityHandler) GetCity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "城市ID不能为空")
		return
	}

	city, err := h.citySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCityError(c, err)
		return
	}

	response.OK(c, city)
}

// CreateCity 创建城市
// POST /api/v1/cities
func (h *CityHandler) CreateCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	city, err := h.citySvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleCityError(c, err)
		return
	}

	response.Created(c, city)
}

// UpdateCity 更新城市
// PUT /api/v1/cities/:id
func (h *CityHandler) UpdateCity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "城市ID不能为空")
		return
	}

	var req dto.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	city, err := h.citySvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleCityError(c, err)
		return
	}

	response.OK(c, city)
}

// DeleteCity 删除城市
// DELETE /api/v1/cities/:id
func (h *CityHandler) DeleteCity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "城市ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.citySvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleCityError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCityError 统一处理城市模块业务错误
func (h *CityHandler) handleCityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCityNotFound):
		response.NotFound(c, 13001, "城市不存在")
	case errors.Is(err, service.ErrZoneNotFound):
		response.BadRequest(c, 12001, "区域不存在")
	default:
		response.InternalError(c)
	}
}
