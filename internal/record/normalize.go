package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ── 响应归一化 ──
//
// 上游 API 对单个资源的包裹方式不稳定，已观察到四种形态：
//   1. 裸对象            {...}
//   2. 通用信封          {"data": {...}}
//   3. 资源名信封        {"property_compliance": {...}}
//   4. 单元素数组包裹    [{...}] 或信封内为数组
// 归一化按 资源名 → data → 裸值 的优先级降级匹配，任何失败都退化为 nil
// 而不是抛错，下游把 nil 统一当作"无记录"处理。

// Normalize 将任意解码后的响应体归一化为单条规范记录；无法解出对象时返回 nil
func Normalize(kind Kind, body []byte) *CanonicalRecord {
	v, ok := decodeAny(body)
	if !ok {
		return nil
	}
	return normalizeValue(kind, v)
}

// NormalizeList 将响应体归一化为记录列表；信封降级规则与 Normalize 一致
func NormalizeList(kind Kind, body []byte) []*CanonicalRecord {
	v, ok := decodeAny(body)
	if !ok {
		return nil
	}
	v = unwrap(kind, v)

	arr, ok := v.([]any)
	if !ok {
		// 单对象也容忍为一元素列表
		if rec := normalizeValue(kind, v); rec != nil {
			return []*CanonicalRecord{rec}
		}
		return nil
	}

	// 数组元素本身也可能各自带资源名信封，逐条走完整归一化
	out := make([]*CanonicalRecord, 0, len(arr))
	for _, item := range arr {
		if rec := normalizeValue(kind, item); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

func decodeAny(body []byte) (any, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber() // 保留数值原文，金额不经过 float 转换
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// unwrap 按优先级剥离信封：资源名键 → data 键 → 原值
func unwrap(kind Kind, v any) any {
	if m, ok := v.(map[string]any); ok {
		if inner, ok := m[kind.ResourceKey]; ok {
			return inner
		}
		if inner, ok := m["data"]; ok {
			return inner
		}
	}
	return v
}

func normalizeValue(kind Kind, v any) *CanonicalRecord {
	v = unwrap(kind, v)

	// 单元素数组包裹：取首个元素，空数组视为无记录
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return nil
		}
		v = arr[0]
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return fromMap(kind, m)
}

// fromMap 构建规范记录，对字段级别的类型漂移（数值/字符串互换）做容错
func fromMap(kind Kind, m map[string]any) *CanonicalRecord {
	rec := &CanonicalRecord{
		ID:            asInt(m["id"]),
		SiteID:        asInt(m["site_id"]),
		RequirementID: asInt(m["compliance_requirement_id"]),
		UnitID:        asInt(m["unit_id"]),
		TenantID:      asInt(m["tenant_id"]),
		AssignedTo:    asInt(m["assigned_to"]),
		DueDate:       asString(m["due_date"]),
		IssueDate:     asString(m["issue_date"]),
		ExpiryDate:    asString(m["expiry_date"]),
		Remarks:       asString(m["remarks"]),
		Status:        asString(m["status"]),
		Title:         asString(m["title"]),
		Description:   asString(m["description"]),
		IssueType:     asString(m["issue_type"]),
		Priority:      asString(m["priority"]),
		Scope:         asString(m["scope"]),
		EstimatedCost: asString(m["estimated_cost"]),
	}

	if docs, ok := m["documents"].([]any); ok {
		for _, d := range docs {
			dm, ok := d.(map[string]any)
			if !ok {
				continue
			}
			rec.Documents = append(rec.Documents, Document{
				Name:         firstString(dm, "name", "file_name", "document_name"),
				URL:          firstString(dm, "url", "document_url"),
				DocumentType: asString(dm["document_type"]),
			})
		}
	}

	if costs, ok := m["costs"].([]any); ok {
		for _, cst := range costs {
			cm, ok := cst.(map[string]any)
			if !ok {
				continue
			}
			rec.Costs = append(rec.Costs, CostLine{
				Type:        asString(cm["type"]),
				Description: asString(cm["description"]),
				Amount:      asString(cm["amount"]),
			})
		}
	}

	return rec
}

// ── 字段级容错转换 ──

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}
