package dto

// ── 合规记录 DTO ──

// ComplianceListRequest 合规记录列表查询参数
type ComplianceListRequest struct {
	SiteID int    `form:"site_id" binding:"required,min=1"`
	Status string `form:"status"  binding:"omitempty,oneof=pending submitted approved rejected"`
}

// ComplianceSubmitRequest 合规记录提交表单（multipart）
//
// id 为空表示新建；新建必须携带文件，更新时文件可选（缺省沿用现有文档）。
type ComplianceSubmitRequest struct {
	ID            string `form:"id"`
	SiteID        string `form:"site_id"`
	RequirementID string `form:"compliance_requirement_id"`
	AssignedTo    string `form:"assigned_to"`
	DueDate       string `form:"due_date"`
	IssueDate     string `form:"issue_date"`
	ExpiryDate    string `form:"expiry_date"`
	Remarks       string `form:"remarks"`
	Status        string `form:"status"`
	DocumentType  string `form:"document_type"`
}

// StatusTransitionRequest 状态流转请求
type StatusTransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// DocumentResponse 附件文档响应
type DocumentResponse struct {
	Name         string `json:"name"`
	URL          string `json:"url,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
}

// ComplianceResponse 合规记录响应
type ComplianceResponse struct {
	ID            int                `json:"id"`
	SiteID        int                `json:"site_id,omitempty"`
	RequirementID int                `json:"compliance_requirement_id,omitempty"`
	AssignedTo    int                `json:"assigned_to,omitempty"`
	DueDate       string             `json:"due_date,omitempty"`
	IssueDate     string             `json:"issue_date,omitempty"`
	ExpiryDate    string             `json:"expiry_date,omitempty"`
	Remarks       string             `json:"remarks,omitempty"`
	Status        string             `json:"status"`
	Documents     []DocumentResponse `json:"documents"`
	DocumentCount map[string]int     `json:"document_count_by_type,omitempty"`
}

// ComplianceFormResponse 合规编辑表单响应（全部字符串，空串即未填）
type ComplianceFormResponse struct {
	ID            string `json:"id"`
	SiteID        string `json:"site_id"`
	RequirementID string `json:"compliance_requirement_id"`
	AssignedTo    string `json:"assigned_to"`
	DueDate       string `json:"due_date"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
	Remarks       string `json:"remarks"`
	Status        string `json:"status"`
	DocumentName  string `json:"document_name"`
	DocumentURL   string `json:"document_url"`
	DocumentType  string `json:"document_type"`
}
