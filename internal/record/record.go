package record

// CanonicalRecord 上游资源的规范内存表示
//
// 上游 API 对同一资源存在多种包裹形态，所有下游消费方只依赖本结构，
// 默认形态归一已经完成，不再自行探测载荷形状。
// 本结构仅存在于内存中，权威数据始终在上游。
type CanonicalRecord struct {
	ID int // 0 表示尚未创建（"新"记录）

	// 外键引用
	SiteID        int
	RequirementID int // compliance_requirement_id
	UnitID        int
	TenantID      int
	AssignedTo    int

	// 日期（保留上游原始字符串，投影时截断为日历日期）
	DueDate    string
	IssueDate  string
	ExpiryDate string

	Remarks string
	Status  string

	// 维修工单扩展字段
	Title         string
	Description   string
	IssueType     string
	Priority      string
	Scope         string
	EstimatedCost string

	Documents []Document
	Costs     []CostLine
}

// Document 记录附带的文档元数据
type Document struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	DocumentType string `json:"document_type"`
}

// CostLine 维修工单费用行
type CostLine struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// CurrentDocument 编辑流使用的"当前文档"（documents 的首个元素）
// 多附件记录保留完整列表用于统计，编辑流仅操作首个
func (r *CanonicalRecord) CurrentDocument() *Document {
	if r == nil || len(r.Documents) == 0 {
		return nil
	}
	return &r.Documents[0]
}
