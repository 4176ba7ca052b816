package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRecords    = errors.New("该站点暂无可导出的记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 台账导出面向站点：合规记录与维保工单各占一个 Sheet
//   - 数据以上游当前状态为准，导出前实时拉取，不走记录缓存
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportSiteRegister 导出指定站点的合规/维保台账为 Excel
	ExportSiteRegister(ctx context.Context, siteID int) (*bytes.Buffer, string, error)
}

type exportService struct {
	compliance  *recordFlow
	maintenance *recordFlow
	logger      *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(compliance, maintenance *recordFlow, logger *zap.Logger) ExportService {
	return &exportService{
		compliance:  compliance,
		maintenance: maintenance,
		logger:      logger,
	}
}

// ═══════════════════════════════════════════════════════════
// ExportSiteRegister — 导出站点台账为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportSiteRegister(ctx context.Context, siteID int) (*bytes.Buffer, string, error) {
	compliances, err := s.compliance.list(ctx, siteID, "")
	if err != nil {
		s.logger.Error("拉取合规记录失败", zap.Int("site_id", siteID), zap.Error(err))
		return nil, "", err
	}

	maintenances, err := s.maintenance.list(ctx, siteID, "")
	if err != nil {
		s.logger.Error("拉取维保工单失败", zap.Int("site_id", siteID), zap.Error(err))
		return nil, "", err
	}

	if len(compliances) == 0 && len(maintenances) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeComplianceSheet(f, compliances); err != nil {
		return nil, "", err
	}
	if err := s.writeMaintenanceSheet(f, maintenances); err != nil {
		return nil, "", err
	}

	// excelize 默认创建的 Sheet1 不承载数据
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("删除默认 Sheet 失败", zap.Error(err))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("site_%d_register_%s.xlsx", siteID, time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── 内部辅助方法 ──

func (s *exportService) writeComplianceSheet(f *excelize.File, records []*record.CanonicalRecord) error {
	const sheet = "合规记录"
	if _, err := f.NewSheet(sheet); err != nil {
		return ErrExportGenerateFail
	}

	headers := []string{"ID", "合规要求", "签发日期", "到期日期", "截止日期", "状态", "备注", "附件数"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}

	for i, rec := range records {
		row := i + 2
		cells := []any{
			rec.ID,
			rec.RequirementID,
			rec.IssueDate,
			rec.ExpiryDate,
			rec.DueDate,
			rec.Status,
			rec.Remarks,
			len(rec.Documents),
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
	}

	return nil
}

func (s *exportService) writeMaintenanceSheet(f *excelize.File, records []*record.CanonicalRecord) error {
	const sheet = "维保工单"
	if _, err := f.NewSheet(sheet); err != nil {
		return ErrExportGenerateFail
	}

	headers := []string{"ID", "标题", "问题类型", "优先级", "状态", "截止日期", "预估费用", "费用合计", "附件数"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return err
	}

	for i, rec := range records {
		row := i + 2
		cells := []any{
			rec.ID,
			rec.Title,
			rec.IssueType,
			rec.Priority,
			rec.Status,
			rec.DueDate,
			rec.EstimatedCost,
			record.TotalCost(rec),
			len(rec.Documents),
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
	}

	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return writeRow(f, sheet, 1, cells)
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return ErrExportGenerateFail
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return ErrExportGenerateFail
		}
	}
	return nil
}
