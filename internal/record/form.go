package record

import "strconv"

// FormState 可编辑表单状态
//
// 全部字段为字符串（与下拉框/日期输入的取值一致），投影后不存在未初始化字段。
// UI 层持有唯一可变引用，本包只提供纯函数变换（Project / Assemble）。
type FormState struct {
	ID string // 空串表示"新"记录

	SiteID        string
	RequirementID string
	UnitID        string
	TenantID      string
	AssignedTo    string

	DueDate    string
	IssueDate  string
	ExpiryDate string

	Remarks string
	Status  string

	Title         string
	Description   string
	IssueType     string
	Priority      string
	Scope         string
	EstimatedCost string

	// 当前文档（来自 documents 首元素）；新选择的文件由独立参数传入，
	// 两者不会同时生效，新文件优先
	DocumentName string
	DocumentURL  string
	DocumentType string
}

// Project 将规范记录投影为表单状态；rec 为 nil 时返回全默认值
//
// 每次源记录变化都整体替换表单状态而非合并，避免残留上一条记录的字段。
func Project(kind Kind, rec *CanonicalRecord) FormState {
	form := FormState{Status: StatusPending}

	if rec == nil {
		return form
	}

	if rec.ID != 0 {
		form.ID = strconv.Itoa(rec.ID)
	}
	form.SiteID = refString(rec.SiteID)
	form.RequirementID = refString(rec.RequirementID)
	form.UnitID = refString(rec.UnitID)
	form.TenantID = refString(rec.TenantID)
	form.AssignedTo = refString(rec.AssignedTo)

	// 日期时间统一截断为日历日期（前 10 个字符），与日期输入框的格式一致；
	// 不做重新格式化，保持与上游原文的一致性
	form.DueDate = truncateDate(rec.DueDate)
	form.IssueDate = truncateDate(rec.IssueDate)
	form.ExpiryDate = truncateDate(rec.ExpiryDate)

	form.Remarks = rec.Remarks
	if rec.Status != "" {
		form.Status = rec.Status
	}

	form.Title = rec.Title
	form.Description = rec.Description
	form.IssueType = rec.IssueType
	form.Priority = rec.Priority
	form.Scope = rec.Scope
	form.EstimatedCost = rec.EstimatedCost

	if doc := rec.CurrentDocument(); doc != nil {
		form.DocumentName = doc.Name
		form.DocumentURL = doc.URL
		form.DocumentType = doc.DocumentType
	}

	return form
}

// IsUpdate 提交动词由稳定标识是否存在决定，而非 UI 模式标志
func (f FormState) IsUpdate() bool {
	return f.ID != ""
}

func refString(id int) string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}

func truncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
