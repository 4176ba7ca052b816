package dto

// ── 维保工单 DTO ──

// MaintenanceListRequest 维保工单列表查询参数
type MaintenanceListRequest struct {
	SiteID int    `form:"site_id" binding:"required,min=1"`
	Status string `form:"status"  binding:"omitempty,oneof=pending in-progress completed rejected"`
}

// MaintenanceSubmitRequest 维保工单提交表单（multipart）
//
// id 为空表示新建；文件始终可选，存在时以内嵌 documents 数组随载荷上行。
type MaintenanceSubmitRequest struct {
	ID            string `form:"id"`
	SiteID        string `form:"site_id"`
	UnitID        string `form:"unit_id"`
	TenantID      string `form:"tenant_id"`
	AssignedTo    string `form:"assigned_to"`
	Title         string `form:"title"`
	Description   string `form:"description"`
	IssueType     string `form:"issue_type"`
	Priority      string `form:"priority"`
	Scope         string `form:"scope"`
	EstimatedCost string `form:"estimated_cost"`
	DueDate       string `form:"due_date"`
	Status        string `form:"status"`
	DocumentType  string `form:"document_type"`
}

// CostLineResponse 费用明细响应
type CostLineResponse struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

// MaintenanceResponse 维保工单响应
type MaintenanceResponse struct {
	ID            int                `json:"id"`
	SiteID        int                `json:"site_id,omitempty"`
	UnitID        int                `json:"unit_id,omitempty"`
	TenantID      int                `json:"tenant_id,omitempty"`
	AssignedTo    int                `json:"assigned_to,omitempty"`
	Title         string             `json:"title,omitempty"`
	Description   string             `json:"description,omitempty"`
	IssueType     string             `json:"issue_type,omitempty"`
	Priority      string             `json:"priority,omitempty"`
	Scope         string             `json:"scope,omitempty"`
	EstimatedCost string             `json:"estimated_cost,omitempty"`
	DueDate       string             `json:"due_date,omitempty"`
	Status        string             `json:"status"`
	Documents     []DocumentResponse `json:"documents"`
	Costs         []CostLineResponse `json:"costs,omitempty"`
	TotalCost     float64            `json:"total_cost"`
}

// MaintenanceFormResponse 维保编辑表单响应
type MaintenanceFormResponse struct {
	ID            string `json:"id"`
	SiteID        string `json:"site_id"`
	UnitID        string `json:"unit_id"`
	TenantID      string `json:"tenant_id"`
	AssignedTo    string `json:"assigned_to"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	IssueType     string `json:"issue_type"`
	Priority      string `json:"priority"`
	Scope         string `json:"scope"`
	EstimatedCost string `json:"estimated_cost"`
	DueDate       string `json:"due_date"`
	Status        string `json:"status"`
	DocumentName  string `json:"document_name"`
	DocumentURL   string `json:"document_url"`
	DocumentType  string `json:"document_type"`
}
