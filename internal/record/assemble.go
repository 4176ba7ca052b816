package record

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError 提交前聚合校验错误：一次性列出全部缺失字段
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "缺少必填字段: " + strings.Join(e.Fields, ", ")
}

// Assemble 将表单状态装配为上游创建/更新请求体
//
// 规则：
//   - 必填校验先于装配；未通过时返回 *ValidationError，不发出任何部分载荷
//   - 日期空串一律输出为 null（绝不输出 ""），上游以此区分"清除"与"未指定"
//   - 外键按字符串解析为整数；非数字属编程错误（下拉框驱动的表单不应出现），直接报错
//   - 文件与文档元数据字段仅在有值时出现；缺席时省略键而非输出空串，
//     避免误触上游的部分更新语义清掉既有值
//   - 新选择的文件优先于既有 documents[0]
func Assemble(kind Kind, form FormState, isUpdate bool, file *EncodedFile) (map[string]any, error) {
	// ── 必填校验 ──
	var missing []string
	for _, field := range kind.Required {
		if formValue(form, field) == "" {
			missing = append(missing, field)
		}
	}
	if !isUpdate && kind.FileOnNew && file == nil {
		missing = append(missing, "file")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	// ── 资源体装配 ──
	inner := map[string]any{}

	if err := putRef(inner, "site_id", form.SiteID); err != nil {
		return nil, err
	}
	if err := putRef(inner, "compliance_requirement_id", form.RequirementID); err != nil {
		return nil, err
	}
	if err := putRef(inner, "unit_id", form.UnitID); err != nil {
		return nil, err
	}
	if err := putRef(inner, "tenant_id", form.TenantID); err != nil {
		return nil, err
	}
	if err := putRef(inner, "assigned_to", form.AssignedTo); err != nil {
		return nil, err
	}

	inner["due_date"] = nullableDate(form.DueDate)
	inner["issue_date"] = nullableDate(form.IssueDate)
	inner["expiry_date"] = nullableDate(form.ExpiryDate)

	status := form.Status
	if status == "" {
		status = StatusPending
	}
	inner["status"] = status

	putString(inner, "remarks", form.Remarks)
	putString(inner, "title", form.Title)
	putString(inner, "description", form.Description)
	putString(inner, "issue_type", form.IssueType)
	putString(inner, "priority", form.Priority)
	putString(inner, "scope", form.Scope)

	if form.EstimatedCost != "" {
		cost, err := strconv.ParseFloat(form.EstimatedCost, 64)
		if err != nil {
			return nil, fmt.Errorf("预估费用 %q 不是合法数字", form.EstimatedCost)
		}
		inner["estimated_cost"] = cost
	}

	// ── 文档装配 ──
	payload := map[string]any{kind.ResourceKey: inner}

	if kind.InlineDocs {
		if file != nil {
			doc := map[string]any{
				"file_name":   file.Name,
				"base64_data": file.DataURL,
			}
			if form.DocumentType != "" {
				doc["document_type"] = form.DocumentType
			}
			inner["documents"] = []map[string]any{doc}
		}
	} else {
		docName := form.DocumentName
		if file != nil {
			docName = file.Name
			payload["base64_data"] = file.DataURL
		}
		if docName != "" {
			payload["document_name"] = docName
		}
		if form.DocumentType != "" {
			payload["document_type"] = form.DocumentType
		}
	}

	return payload, nil
}

// StatusPayload 状态迁移专用载荷：只允许携带 status 字段，
// 避免整单重发覆盖其他字段的并发修改
func StatusPayload(kind Kind, status string) (map[string]any, error) {
	if err := kind.ValidateStatus(status); err != nil {
		return nil, err
	}
	return map[string]any{
		kind.ResourceKey: map[string]any{"status": status},
	}, nil
}

// ── 装配辅助 ──

func formValue(form FormState, field string) string {
	switch field {
	case "site_id":
		return form.SiteID
	case "compliance_requirement_id":
		return form.RequirementID
	case "unit_id":
		return form.UnitID
	case "tenant_id":
		return form.TenantID
	case "title":
		return form.Title
	default:
		return ""
	}
}

func putRef(m map[string]any, key, value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("外键字段 %s 的值 %q 不是数字", key, value)
	}
	m[key] = n
	return nil
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func nullableDate(s string) any {
	if s == "" {
		return nil
	}
	return s
}
