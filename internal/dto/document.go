package dto

// ── 通用附件文档 DTO ──

// AttachedDocumentListRequest 站点附件文档列表查询参数
type AttachedDocumentListRequest struct {
	SiteID int    `form:"site_id" binding:"required,min=1"`
	Status string `form:"status"  binding:"omitempty,oneof=pending submitted approved rejected"`
}

// AttachedDocumentSubmitRequest 附件文档提交表单（multipart）
//
// id 为空表示新建；新建必须携带文件，更新时文件可选（缺省沿用现有文档）。
type AttachedDocumentSubmitRequest struct {
	ID           string `form:"id"`
	SiteID       string `form:"site_id"`
	ExpiryDate   string `form:"expiry_date"`
	Remarks      string `form:"remarks"`
	Status       string `form:"status"`
	DocumentType string `form:"document_type"`
}

// AttachedDocumentResponse 附件文档记录响应
type AttachedDocumentResponse struct {
	ID            int                `json:"id"`
	SiteID        int                `json:"site_id,omitempty"`
	ExpiryDate    string             `json:"expiry_date,omitempty"`
	Remarks       string             `json:"remarks,omitempty"`
	Status        string             `json:"status"`
	Documents     []DocumentResponse `json:"documents"`
	DocumentCount map[string]int     `json:"document_count_by_type,omitempty"`
}

// AttachedDocumentFormResponse 附件文档编辑表单响应（全部字符串，空串即未填）
type AttachedDocumentFormResponse struct {
	ID           string `json:"id"`
	SiteID       string `json:"site_id"`
	ExpiryDate   string `json:"expiry_date"`
	Remarks      string `json:"remarks"`
	Status       string `json:"status"`
	DocumentName string `json:"document_name"`
	DocumentURL  string `json:"document_url"`
	DocumentType string `json:"document_type"`
}
