package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// ComplianceHandler 合规记录 HTTP 处理器
type ComplianceHandler struct {
	complianceSvc service.ComplianceService
}

// NewComplianceHandler 创建 ComplianceHandler
func NewComplianceHandler(complianceSvc service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceSvc: complianceSvc}
}

// ListCompliances 获取站点合规记录列表
// GET /api/v1/compliances?site_id=3&status=pending
func (h *ComplianceHandler) ListCompliances(c *gin.Context) {
	var req dto.ComplianceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.complianceSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// GetCompliance 获取合规记录详情
// GET /api/v1/compliances/:id
func (h *ComplianceHandler) GetCompliance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "记录ID应为正整数")
		return
	}

	result, err := h.complianceSvc.Get(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

// GetComplianceForm 获取编辑表单状态
// GET /api/v1/compliances/form          新建表单默认值
// GET /api/v1/compliances/form?id=57    既有记录投影
func (h *ComplianceHandler) GetComplianceForm(c *gin.Context) {
	id := 0
	if raw := c.Query("id"); raw != "" {
		var err error
		id, err = strconv.Atoi(raw)
		if err != nil || id <= 0 {
			response.BadRequest(c, 10001, "记录ID应为正整数")
			return
		}
	}

	form, err := h.complianceSvc.GetForm(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, form)
}

// SubmitCompliance 新建或更新合规记录（multipart 表单）
// POST /api/v1/compliances
func (h *ComplianceHandler) SubmitCompliance(c *gin.Context) {
	var req dto.ComplianceSubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	file, err := formFile(c)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	result, err := h.complianceSvc.Submit(c.Request.Context(), &req, file)
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

// TransitionCompliance 合规记录状态流转
// PATCH /api/v1/compliances/:id/status
func (h *ComplianceHandler) TransitionCompliance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "记录ID应为正整数")
		return
	}

	var req dto.StatusTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.complianceSvc.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}
