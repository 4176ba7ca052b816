package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// ComplianceService 物业合规记录业务接口
//
// 记录的权威副本在上游物业管理系统；本服务负责归一化读取、
// 表单投影、装配提交与状态流转，不在本地数据库落任何记录行。
type ComplianceService interface {
	List(ctx context.Context, req *dto.ComplianceListRequest) ([]dto.ComplianceResponse, error)
	Get(ctx context.Context, id int) (*dto.ComplianceResponse, error)
	// GetForm 返回编辑表单状态；id 为 0 时返回新建表单的默认值
	GetForm(ctx context.Context, id int) (*dto.ComplianceFormResponse, error)
	// Submit 新建或更新由表单中 id 是否存在决定；file 为新选择的附件，可为 nil
	Submit(ctx context.Context, req *dto.ComplianceSubmitRequest, file *record.EncodedFile) (*dto.ComplianceResponse, error)
	Transition(ctx context.Context, id int, status string) (*dto.ComplianceResponse, error)
}

type complianceService struct {
	flow   *recordFlow
	logger *zap.Logger
}

// NewComplianceService 创建 ComplianceService 实例
func NewComplianceService(flow *recordFlow, logger *zap.Logger) ComplianceService {
	return &complianceService{flow: flow, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *complianceService) List(ctx context.Context, req *dto.ComplianceListRequest) ([]dto.ComplianceResponse, error) {
	records, err := s.flow.list(ctx, req.SiteID, req.Status)
	if err != nil {
		s.logger.Error("拉取合规记录列表失败", zap.Int("site_id", req.SiteID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ComplianceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, *toComplianceResponse(rec))
	}

	return result, nil
}

// ────────────────────── Get ──────────────────────

func (s *complianceService) Get(ctx context.Context, id int) (*dto.ComplianceResponse, error) {
	rec, err := s.flow.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toComplianceResponse(rec), nil
}

// ────────────────────── GetForm ──────────────────────

func (s *complianceService) GetForm(ctx context.Context, id int) (*dto.ComplianceFormResponse, error) {
	var rec *record.CanonicalRecord
	if id != 0 {
		var err error
		rec, err = s.flow.get(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	form := record.Project(record.Compliance, rec)
	return &dto.ComplianceFormResponse{
		ID:            form.ID,
		SiteID:        form.SiteID,
		RequirementID: form.RequirementID,
		AssignedTo:    form.AssignedTo,
		DueDate:       form.DueDate,
		IssueDate:     form.IssueDate,
		ExpiryDate:    form.ExpiryDate,
		Remarks:       form.Remarks,
		Status:        form.Status,
		DocumentName:  form.DocumentName,
		DocumentURL:   form.DocumentURL,
		DocumentType:  form.DocumentType,
	}, nil
}

// ────────────────────── Submit ──────────────────────

func (s *complianceService) Submit(ctx context.Context, req *dto.ComplianceSubmitRequest, file *record.EncodedFile) (*dto.ComplianceResponse, error) {
	form := record.FormState{
		ID:            req.ID,
		SiteID:        req.SiteID,
		RequirementID: req.RequirementID,
		AssignedTo:    req.AssignedTo,
		DueDate:       req.DueDate,
		IssueDate:     req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		Remarks:       req.Remarks,
		Status:        req.Status,
		DocumentType:  req.DocumentType,
	}

	rec, err := s.flow.submit(ctx, form, file)
	if err != nil {
		return nil, err
	}

	return toComplianceResponse(rec), nil
}

// ────────────────────── Transition ──────────────────────

func (s *complianceService) Transition(ctx context.Context, id int, status string) (*dto.ComplianceResponse, error) {
	rec, err := s.flow.transition(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return toComplianceResponse(rec), nil
}

// ── 内部辅助方法 ──

func toComplianceResponse(rec *record.CanonicalRecord) *dto.ComplianceResponse {
	return &dto.ComplianceResponse{
		ID:            rec.ID,
		SiteID:        rec.SiteID,
		RequirementID: rec.RequirementID,
		AssignedTo:    rec.AssignedTo,
		DueDate:       rec.DueDate,
		IssueDate:     rec.IssueDate,
		ExpiryDate:    rec.ExpiryDate,
		Remarks:       rec.Remarks,
		Status:        rec.Status,
		Documents:     toDocumentResponses(rec.Documents),
		DocumentCount: record.DocumentCountsByType(rec),
	}
}

func toDocumentResponses(docs []record.Document) []dto.DocumentResponse {
	result := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, dto.DocumentResponse{
			Name:         d.Name,
			URL:          d.URL,
			DocumentType: d.DocumentType,
		})
	}
	return result
}
