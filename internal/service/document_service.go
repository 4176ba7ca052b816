package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// AttachedDocumentService 站点通用附件文档业务接口
//
// 与合规记录/维保工单同构：权威副本在上游，本服务只做归一化、
// 表单投影与装配提交。文档随站点挂载，新建必须携带文件。
type AttachedDocumentService interface {
	List(ctx context.Context, req *dto.AttachedDocumentListRequest) ([]dto.AttachedDocumentResponse, error)
	Get(ctx context.Context, id int) (*dto.AttachedDocumentResponse, error)
	// GetForm 返回编辑表单状态；id 为 0 时返回新建表单的默认值
	GetForm(ctx context.Context, id int) (*dto.AttachedDocumentFormResponse, error)
	Submit(ctx context.Context, req *dto.AttachedDocumentSubmitRequest, file *record.EncodedFile) (*dto.AttachedDocumentResponse, error)
	Transition(ctx context.Context, id int, status string) (*dto.AttachedDocumentResponse, error)
}

type attachedDocumentService struct {
	flow   *recordFlow
	logger *zap.Logger
}

// NewAttachedDocumentService 创建 AttachedDocumentService 实例
func NewAttachedDocumentService(flow *recordFlow, logger *zap.Logger) AttachedDocumentService {
	return &attachedDocumentService{flow: flow, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *attachedDocumentService) List(ctx context.Context, req *dto.AttachedDocumentListRequest) ([]dto.AttachedDocumentResponse, error) {
	records, err := s.flow.list(ctx, req.SiteID, req.Status)
	if err != nil {
		s.logger.Error("拉取附件文档列表失败", zap.Int("site_id", req.SiteID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttachedDocumentResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, *toAttachedDocumentResponse(rec))
	}

	return result, nil
}

// ────────────────────── Get ──────────────────────

func (s *attachedDocumentService) Get(ctx context.Context, id int) (*dto.AttachedDocumentResponse, error) {
	rec, err := s.flow.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAttachedDocumentResponse(rec), nil
}

// ────────────────────── GetForm ──────────────────────

func (s *attachedDocumentService) GetForm(ctx context.Context, id int) (*dto.AttachedDocumentFormResponse, error) {
	var rec *record.CanonicalRecord
	if id != 0 {
		var err error
		rec, err = s.flow.get(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	form := record.Project(record.AttachedDocument, rec)
	return &dto.AttachedDocumentFormResponse{
		ID:           form.ID,
		SiteID:       form.SiteID,
		ExpiryDate:   form.ExpiryDate,
		Remarks:      form.Remarks,
		Status:       form.Status,
		DocumentName: form.DocumentName,
		DocumentURL:  form.DocumentURL,
		DocumentType: form.DocumentType,
	}, nil
}

// ────────────────────── Submit ──────────────────────

func (s *attachedDocumentService) Submit(ctx context.Context, req *dto.AttachedDocumentSubmitRequest, file *record.EncodedFile) (*dto.AttachedDocumentResponse, error) {
	form := record.FormState{
		ID:           req.ID,
		SiteID:       req.SiteID,
		ExpiryDate:   req.ExpiryDate,
		Remarks:      req.Remarks,
		Status:       req.Status,
		DocumentType: req.DocumentType,
	}

	rec, err := s.flow.submit(ctx, form, file)
	if err != nil {
		return nil, err
	}

	return toAttachedDocumentResponse(rec), nil
}

// ────────────────────── Transition ──────────────────────

func (s *attachedDocumentService) Transition(ctx context.Context, id int, status string) (*dto.AttachedDocumentResponse, error) {
	rec, err := s.flow.transition(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return toAttachedDocumentResponse(rec), nil
}

// ── 内部辅助方法 ──

func toAttachedDocumentResponse(rec *record.CanonicalRecord) *dto.AttachedDocumentResponse {
	return &dto.AttachedDocumentResponse{
		ID:            rec.ID,
		SiteID:        rec.SiteID,
		ExpiryDate:    rec.ExpiryDate,
		Remarks:       rec.Remarks,
		Status:        rec.Status,
		Documents:     toDocumentResponses(rec.Documents),
		DocumentCount: record.DocumentCountsByType(rec),
	}
}
