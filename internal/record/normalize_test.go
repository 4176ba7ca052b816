package record

import (
	"reflect"
	"testing"
)

// ── Normalize 信封形态 ──

func TestNormalize_AllEnvelopeShapes(t *testing.T) {
	// 同一底层对象的四种包裹形态必须归一化出相同结果
	bodies := map[string]string{
		"裸对象":    `{"id": 12, "site_id": 3, "status": "pending"}`,
		"data信封": `{"data": {"id": 12, "site_id": 3, "status": "pending"}}`,
		"资源名信封":  `{"property_compliance": {"id": 12, "site_id": 3, "status": "pending"}}`,
		"数组包裹":   `[{"id": 12, "site_id": 3, "status": "pending"}]`,
	}

	var expected *CanonicalRecord
	for name, body := range bodies {
		rec := Normalize(Compliance, []byte(body))
		if rec == nil {
			t.Fatalf("%s: 归一化结果不应为 nil", name)
		}
		if expected == nil {
			expected = rec
			continue
		}
		if !reflect.DeepEqual(rec, expected) {
			t.Errorf("%s: 归一化结果不一致: %+v vs %+v", name, rec, expected)
		}
	}

	if expected.ID != 12 || expected.SiteID != 3 || expected.Status != "pending" {
		t.Errorf("字段映射错误: %+v", expected)
	}
}

func TestNormalize_ResourceKeyBeforeData(t *testing.T) {
	// 资源名信封优先于 data 信封
	body := `{"property_compliance": {"id": 1}, "data": {"id": 2}}`
	rec := Normalize(Compliance, []byte(body))
	if rec == nil || rec.ID != 1 {
		t.Errorf("期望资源名信封优先，实际: %+v", rec)
	}
}

func TestNormalize_EnvelopeWrappingArray(t *testing.T) {
	body := `{"data": [{"id": 7, "site_id": 1}]}`
	rec := Normalize(Compliance, []byte(body))
	if rec == nil || rec.ID != 7 {
		t.Errorf("期望解出数组首元素，实际: %+v", rec)
	}
}

func TestNormalize_DegradesToNil(t *testing.T) {
	cases := map[string]string{
		"空数组":    `[]`,
		"null":   `null`,
		"数字":     `42`,
		"字符串":    `"oops"`,
		"信封内空数组": `{"data": []}`,
		"信封内标量":  `{"property_compliance": 5}`,
		"非法JSON": `{not json`,
		"空输入":    ``,
	}
	for name, body := range cases {
		if rec := Normalize(Compliance, []byte(body)); rec != nil {
			t.Errorf("%s: 期望 nil，实际: %+v", name, rec)
		}
	}
}

// ── 字段级容错 ──

func TestNormalize_NumericFieldsAsStrings(t *testing.T) {
	body := `{"id": "15", "site_id": "3", "compliance_requirement_id": 7}`
	rec := Normalize(Compliance, []byte(body))
	if rec == nil {
		t.Fatal("归一化结果不应为 nil")
	}
	if rec.ID != 15 || rec.SiteID != 3 || rec.RequirementID != 7 {
		t.Errorf("数值字段容错失败: %+v", rec)
	}
}

func TestNormalize_DocumentsAndCosts(t *testing.T) {
	body := `{"maintenance_request": {
		"id": 9,
		"title": "漏水维修",
		"documents": [
			{"file_name": "photo.jpg", "document_type": "evidence", "url": "https://x/photo.jpg"},
			{"name": "invoice.pdf", "document_type": "invoice"}
		],
		"costs": [
			{"type": "labour", "amount": "120.5"},
			{"type": "material", "amount": 80}
		]
	}}`
	rec := Normalize(Maintenance, []byte(body))
	if rec == nil {
		t.Fatal("归一化结果不应为 nil")
	}
	if len(rec.Documents) != 2 {
		t.Fatalf("期望2个文档，实际=%d", len(rec.Documents))
	}
	if rec.Documents[0].Name != "photo.jpg" || rec.Documents[0].URL != "https://x/photo.jpg" {
		t.Errorf("文档字段映射错误: %+v", rec.Documents[0])
	}
	if rec.Documents[1].Name != "invoice.pdf" {
		t.Errorf("文档名别名键未识别: %+v", rec.Documents[1])
	}
	if len(rec.Costs) != 2 {
		t.Fatalf("期望2条费用行，实际=%d", len(rec.Costs))
	}
	if rec.Costs[1].Amount != "80" {
		t.Errorf("数值金额应保留原文，实际=%q", rec.Costs[1].Amount)
	}
}

// ── NormalizeList ──

func TestNormalizeList_Shapes(t *testing.T) {
	cases := map[string]string{
		"裸数组":    `[{"id": 1}, {"id": 2}]`,
		"data信封": `{"data": [{"id": 1}, {"id": 2}]}`,
		"资源名信封":  `{"property_compliance": [{"id": 1}, {"id": 2}]}`,
	}
	for name, body := range cases {
		recs := NormalizeList(Compliance, []byte(body))
		if len(recs) != 2 {
			t.Errorf("%s: 期望2条记录，实际=%d", name, len(recs))
			continue
		}
		if recs[0].ID != 1 || recs[1].ID != 2 {
			t.Errorf("%s: 列表顺序/字段错误", name)
		}
	}
}

func TestNormalizeList_ItemLevelEnvelopes(t *testing.T) {
	// 数组元素自身也可能各自套资源名信封，且与裸元素混排
	body := `{"data": [
		{"property_compliance": {"id": 57, "site_id": 3, "status": "approved"}},
		{"id": 58, "site_id": 3, "status": "pending"}
	]}`
	recs := NormalizeList(Compliance, []byte(body))
	if len(recs) != 2 {
		t.Fatalf("期望2条记录，实际=%d", len(recs))
	}
	if recs[0].ID != 57 || recs[0].Status != "approved" {
		t.Errorf("元素级信封未剥离: %+v", recs[0])
	}
	if recs[1].ID != 58 || recs[1].Status != "pending" {
		t.Errorf("裸元素归一化错误: %+v", recs[1])
	}
}

func TestNormalizeList_SingleObject(t *testing.T) {
	recs := NormalizeList(Compliance, []byte(`{"data": {"id": 5}}`))
	if len(recs) != 1 || recs[0].ID != 5 {
		t.Errorf("单对象应容忍为一元素列表，实际: %+v", recs)
	}
}
