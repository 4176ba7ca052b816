package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockUpstream) {
	up := newMockUpstream()
	compliance := newRecordFlow(record.Compliance, up, nil, zap.NewNop())
	maintenance := newRecordFlow(record.Maintenance, up, nil, zap.NewNop())
	svc := NewExportService(compliance, maintenance, zap.NewNop())
	return svc, up
}

// ── ExportSiteRegister 测试 ──

func TestExportService_ExportSiteRegister_Success(t *testing.T) {
	svc, up := setupTestExportService()
	up.set("GET", "/property_compliances?site_id=3", []byte(`[
		{"id": 57, "site_id": 3, "status": "pending", "remarks": "年检",
		 "documents": [{"name": "cert.pdf"}]}
	]`))
	up.set("GET", "/maintenance_requests?site_id=3", []byte(`[
		{"id": 12, "site_id": 3, "title": "水管漏水", "status": "in-progress",
		 "costs": [{"amount": "10.5"}, {"amount": "4"}]}
	]`))

	buf, filename, err := svc.ExportSiteRegister(context.Background(), 3)
	if err != nil {
		t.Fatalf("ExportSiteRegister 应成功: %v", err)
	}
	if !strings.HasPrefix(filename, "site_3_register_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式错误: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	status, err := f.GetCellValue("合规记录", "F2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if status != "pending" {
		t.Errorf("期望合规状态单元格=pending，实际=%q", status)
	}

	total, err := f.GetCellValue("维保工单", "H2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if total != "14.5" {
		t.Errorf("期望费用合计=14.5，实际=%q", total)
	}
}

func TestExportService_ExportSiteRegister_Empty(t *testing.T) {
	svc, up := setupTestExportService()
	up.set("GET", "/property_compliances?site_id=9", []byte(`[]`))
	up.set("GET", "/maintenance_requests?site_id=9", []byte(`[]`))

	_, _, err := svc.ExportSiteRegister(context.Background(), 9)
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("期望 ErrExportNoRecords，实际: %v", err)
	}
}
