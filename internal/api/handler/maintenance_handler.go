package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// MaintenanceHandler 维保工单 HTTP 处理器
type MaintenanceHandler struct {
	maintenanceSvc service.MaintenanceService
}

// NewMaintenanceHandler 创建 MaintenanceHandler
func NewMaintenanceHandler(maintenanceSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

// ListMaintenances 获取站点维保工单列表
// GET /api/v1/maintenances?site_id=3&status=in-progress
func (h *MaintenanceHandler) ListMaintenances(c *gin.Context) {
	var req dto.MaintenanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.maintenanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// GetMaintenance 获取维保工单详情
// GET /api/v1/maintenances/:id
func (h *MaintenanceHandler) GetMaintenance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "工单ID应为正整数")
		return
	}

	result, err := h.maintenanceSvc.Get(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

// GetMaintenanceForm 获取编辑表单状态
// GET /api/v1/maintenances/form[?id=12]
func (h *MaintenanceHandler) GetMaintenanceForm(c *gin.Context) {
	id := 0
	if raw := c.Query("id"); raw != "" {
		var err error
		id, err = strconv.Atoi(raw)
		if err != nil || id <= 0 {
			response.BadRequest(c, 10001, "工单ID应为正整数")
			return
		}
	}

	form, err := h.maintenanceSvc.GetForm(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, form)
}

// SubmitMaintenance 新建或更新维保工单（multipart 表单）
// POST /api/v1/maintenances
func (h *MaintenanceHandler) SubmitMaintenance(c *gin.Context) {
	var req dto.MaintenanceSubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	file, err := formFile(c)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	result, err := h.maintenanceSvc.Submit(c.Request.Context(), &req, file)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	if req.ID == "" {
		response.Created(c, result)
		return
	}
	response.OK(c, result)
}

// TransitionMaintenance 维保工单状态流转
// PATCH /api/v1/maintenances/:id/status
func (h *MaintenanceHandler) TransitionMaintenance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "工单ID应为正整数")
		return
	}

	var req dto.StatusTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.maintenanceSvc.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}
