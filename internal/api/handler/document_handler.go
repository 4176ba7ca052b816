package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// DocumentHandler 站点附件文档 HTTP 处理器
type DocumentHandler struct {
	documentSvc service.AttachedDocumentService
}

// NewDocumentHandler 创建 DocumentHandler
func NewDocumentHandler(documentSvc service.AttachedDocumentService) *DocumentHandler {
	return &DocumentHandler{documentSvc: documentSvc}
}

// ListDocuments 获取站点附件文档列表
// GET /api/v1/documents?site_id=3&status=approved
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var req dto.AttachedDocumentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.documentSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// GetDocument 获取附件文档详情
// GET /api/v1/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "记录ID应为正整数")
		return
	}

	result, err := h.documentSvc.Get(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}

// GetDocumentForm 获取编辑表单状态
// GET /api/v1/documents/form          新建表单默认值
// GET /api/v1/documents/form?id=31    既有记录投影
func (h *DocumentHandler) GetDocumentForm(c *gin.Context) {
	id := 0
	if raw := c.Query("id"); raw != "" {
		var err error
		id, err = strconv.Atoi(raw)
		if err != nil || id <= 0 {
			response.BadRequest(c, 10001, "记录ID应为正整数")
			return
		}
	}

	form, err := h.documentSvc.GetForm(c.Request.Context(), id)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, form)
}

// SubmitDocument 新建或更新附件文档（multipart 表单）
// POST /api/v1/documents
func (h *DocumentHandler) SubmitDocument(c *gin.Context) {
	var req dto.AttachedDocumentSubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	file, err := formFile(c)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	result, err := h.documentSvc.Submit(c.Request.Context(), &req, file)
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

// TransitionDocument 附件文档状态流转
// PATCH /api/v1/documents/:id/status
func (h *DocumentHandler) TransitionDocument(c *gin.Context) {
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

	result, err := h.documentSvc.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		handleRecordError(c, err)
		return
	}

	response.OK(c, result)
}
