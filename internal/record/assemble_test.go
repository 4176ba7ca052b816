package record

import (
	"errors"
	"strings"
	"testing"
)

// ── 必填校验 ──

func TestAssemble_NewComplianceWithoutFile(t *testing.T) {
	form := FormState{SiteID: "3", RequirementID: "7"}

	_, err := Assemble(Compliance, form, false, nil)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "file" {
		t.Errorf("期望缺失字段 [file]，实际: %v", verr.Fields)
	}
}

func TestAssemble_ListsAllMissingFields(t *testing.T) {
	_, err := Assemble(Compliance, FormState{}, false, nil)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	// 一次性列出全部缺失字段，而非逐个报错
	want := []string{"site_id", "compliance_requirement_id", "file"}
	if len(verr.Fields) != len(want) {
		t.Fatalf("期望缺失 %v，实际: %v", want, verr.Fields)
	}
	for i, f := range want {
		if verr.Fields[i] != f {
			t.Errorf("期望缺失 %v，实际: %v", want, verr.Fields)
			break
		}
	}
	if !strings.Contains(verr.Error(), "site_id, compliance_requirement_id") {
		t.Errorf("错误消息应以逗号连接字段: %s", verr.Error())
	}
}

func TestAssemble_ExistingRecordFileOptional(t *testing.T) {
	form := FormState{
		ID: "12", SiteID: "3", RequirementID: "7",
		DocumentName: "old.pdf", DocumentType: "certificate",
	}

	payload, err := Assemble(Compliance, form, true, nil)
	if err != nil {
		t.Fatalf("已有记录不选文件应可提交: %v", err)
	}

	// 省略编码文件键，保留既有文档元数据
	if _, ok := payload["base64_data"]; ok {
		t.Error("未选文件时不应出现 base64_data 键")
	}
	if payload["document_name"] != "old.pdf" {
		t.Errorf("期望保留既有文档名，实际: %v", payload["document_name"])
	}
}

// ── 文件优先级 ──

func TestAssemble_NewFileSupersedesExistingDocument(t *testing.T) {
	form := FormState{
		ID: "12", SiteID: "3", RequirementID: "7",
		DocumentName: "old.pdf",
	}
	file := &EncodedFile{Name: "new.pdf", DataURL: "data:application/pdf;base64,QUJD"}

	payload, err := Assemble(Compliance, form, true, file)
	if err != nil {
		t.Fatalf("Assemble 失败: %v", err)
	}

	if payload["document_name"] != "new.pdf" {
		t.Errorf("新文件应覆盖既有文档名，实际: %v", payload["document_name"])
	}
	if payload["base64_data"] != file.DataURL {
		t.Errorf("base64_data 应为编码结果，实际: %v", payload["base64_data"])
	}
}

// ── 日期与外键 ──

func TestAssemble_EmptyDatesEmitNull(t *testing.T) {
	form := FormState{SiteID: "3", RequirementID: "7", DueDate: "2024-05-10"}
	file := &EncodedFile{Name: "cert.pdf", DataURL: "data:application/pdf;base64,QQ=="}

	payload, err := Assemble(Compliance, form, false, file)
	if err != nil {
		t.Fatalf("Assemble 失败: %v", err)
	}

	inner := payload["property_compliance"].(map[string]any)
	if inner["due_date"] != "2024-05-10" {
		t.Errorf("期望 due_date=2024-05-10，实际: %v", inner["due_date"])
	}
	// 空日期必须输出显式 null，绝不输出空串
	for _, key := range []string{"issue_date", "expiry_date"} {
		v, ok := inner[key]
		if !ok {
			t.Errorf("%s 键应存在", key)
			continue
		}
		if v != nil {
			t.Errorf("%s 期望 null，实际: %v", key, v)
		}
	}
}

func TestAssemble_NonNumericRefFailsLoudly(t *testing.T) {
	form := FormState{SiteID: "abc", RequirementID: "7"}
	file := &EncodedFile{Name: "cert.pdf", DataURL: "data:;base64,QQ=="}

	_, err := Assemble(Compliance, form, false, file)
	if err == nil {
		t.Fatal("非数字外键应报错而非静默置零")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("外键解析失败属编程错误，不应归为校验错误")
	}
}

// ── 端到端装配 ──

func TestAssemble_NewComplianceEndToEnd(t *testing.T) {
	form := FormState{SiteID: "3", RequirementID: "7", DocumentType: "certificate"}
	file := &EncodedFile{
		Name:    "cert.pdf",
		DataURL: "data:application/pdf;base64,JVBERi0=",
	}

	payload, err := Assemble(Compliance, form, false, file)
	if err != nil {
		t.Fatalf("Assemble 失败: %v", err)
	}

	inner, ok := payload["property_compliance"].(map[string]any)
	if !ok {
		t.Fatal("载荷应以资源键包裹")
	}
	if inner["site_id"] != 3 {
		t.Errorf("期望 site_id=3（整数），实际: %v", inner["site_id"])
	}
	if inner["compliance_requirement_id"] != 7 {
		t.Errorf("期望 compliance_requirement_id=7，实际: %v", inner["compliance_requirement_id"])
	}
	if inner["status"] != StatusPending {
		t.Errorf("新记录默认状态应为 pending，实际: %v", inner["status"])
	}
	if payload["document_name"] != "cert.pdf" {
		t.Errorf("期望 document_name=cert.pdf，实际: %v", payload["document_name"])
	}
	if payload["base64_data"] == nil || payload["base64_data"] == "" {
		t.Error("base64_data 应存在")
	}
}

func TestAssemble_MaintenanceInlineDocuments(t *testing.T) {
	form := FormState{
		SiteID: "3", Title: "电梯故障", Priority: "high",
		EstimatedCost: "1500.50", DocumentType: "photo",
	}
	file := &EncodedFile{Name: "lift.jpg", DataURL: "data:image/jpeg;base64,LzlqLw=="}

	payload, err := Assemble(Maintenance, form, false, file)
	if err != nil {
		t.Fatalf("Assemble 失败: %v", err)
	}

	inner := payload["maintenance_request"].(map[string]any)
	if inner["title"] != "电梯故障" || inner["priority"] != "high" {
		t.Errorf("维修字段装配错误: %+v", inner)
	}
	if inner["estimated_cost"] != 1500.50 {
		t.Errorf("期望 estimated_cost=1500.50，实际: %v", inner["estimated_cost"])
	}

	docs, ok := inner["documents"].([]map[string]any)
	if !ok || len(docs) != 1 {
		t.Fatalf("维修工单文档应内嵌于资源体: %+v", inner["documents"])
	}
	if docs[0]["file_name"] != "lift.jpg" || docs[0]["document_type"] != "photo" {
		t.Errorf("内嵌文档字段错误: %+v", docs[0])
	}
	// 顶层不应出现合规式的文档键
	if _, ok := payload["base64_data"]; ok {
		t.Error("维修工单不应有顶层 base64_data")
	}
}

func TestAssemble_MaintenanceWithoutFile(t *testing.T) {
	form := FormState{SiteID: "3", Title: "水管检查"}

	payload, err := Assemble(Maintenance, form, false, nil)
	if err != nil {
		t.Fatalf("维修工单新建不强制文件: %v", err)
	}

	inner := payload["maintenance_request"].(map[string]any)
	if _, ok := inner["documents"]; ok {
		t.Error("未选文件时不应出现 documents 键")
	}
}

// ── 状态载荷 ──

func TestStatusPayload_ScopedToStatusOnly(t *testing.T) {
	payload, err := StatusPayload(Compliance, StatusSubmitted)
	if err != nil {
		t.Fatalf("StatusPayload 失败: %v", err)
	}

	inner := payload["property_compliance"].(map[string]any)
	if len(inner) != 1 || inner["status"] != StatusSubmitted {
		t.Errorf("状态载荷必须只含 status 字段: %+v", inner)
	}
}

func TestStatusPayload_IllegalStatusRejected(t *testing.T) {
	// in-progress 属维修集合，不属合规集合
	if _, err := StatusPayload(Compliance, StatusInProgress); !errors.Is(err, ErrIllegalStatus) {
		t.Errorf("期望 ErrIllegalStatus，实际: %v", err)
	}
	// completed 属维修集合
	if _, err := StatusPayload(Maintenance, StatusCompleted); err != nil {
		t.Errorf("completed 对维修工单应合法: %v", err)
	}
	if _, err := StatusPayload(Maintenance, StatusApproved); !errors.Is(err, ErrIllegalStatus) {
		t.Errorf("approved 对维修工单应非法，实际: %v", err)
	}
}
