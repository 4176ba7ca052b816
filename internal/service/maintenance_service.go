package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// MaintenanceService 维保工单业务接口
type MaintenanceService interface {
	List(ctx context.Context, req *dto.MaintenanceListRequest) ([]dto.MaintenanceResponse, error)
	Get(ctx context.Context, id int) (*dto.MaintenanceResponse, error)
	GetForm(ctx context.Context, id int) (*dto.MaintenanceFormResponse, error)
	Submit(ctx context.Context, req *dto.MaintenanceSubmitRequest, file *record.EncodedFile) (*dto.MaintenanceResponse, error)
	Transition(ctx context.Context, id int, status string) (*dto.MaintenanceResponse, error)
}

type maintenanceService struct {
	flow   *recordFlow
	logger *zap.Logger
}

// NewMaintenanceService 创建 MaintenanceService 实例
func NewMaintenanceService(flow *recordFlow, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{flow: flow, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *maintenanceService) List(ctx context.Context, req *dto.MaintenanceListRequest) ([]dto.MaintenanceResponse, error) {
	records, err := s.flow.list(ctx, req.SiteID, req.Status)
	if err != nil {
		s.logger.Error("拉取维保工单列表失败", zap.Int("site_id", req.SiteID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.MaintenanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, *toMaintenanceResponse(rec))
	}

	return result, nil
}

// ────────────────────── Get ──────────────────────

func (s *maintenanceService) Get(ctx context.Context, id int) (*dto.MaintenanceResponse, error) {
	rec, err := s.flow.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(rec), nil
}

// ────────────────────── GetForm ──────────────────────

func (s *maintenanceService) GetForm(ctx context.Context, id int) (*dto.MaintenanceFormResponse, error) {
	var rec *record.CanonicalRecord
	if id != 0 {
		var err error
		rec, err = s.flow.get(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	form := record.Project(record.Maintenance, rec)
	return &dto.MaintenanceFormResponse{
		ID:            form.ID,
		SiteID:        form.SiteID,
		UnitID:        form.UnitID,
		TenantID:      form.TenantID,
		AssignedTo:    form.AssignedTo,
		Title:         form.Title,
		Description:   form.Description,
		IssueType:     form.IssueType,
		Priority:      form.Priority,
		Scope:         form.Scope,
		EstimatedCost: form.EstimatedCost,
		DueDate:       form.DueDate,
		Status:        form.Status,
		DocumentName:  form.DocumentName,
		DocumentURL:   form.DocumentURL,
		DocumentType:  form.DocumentType,
	}, nil
}

// ────────────────────── Submit ──────────────────────

func (s *maintenanceService) Submit(ctx context.Context, req *dto.MaintenanceSubmitRequest, file *record.EncodedFile) (*dto.MaintenanceResponse, error) {
	form := record.FormState{
		ID:            req.ID,
		SiteID:        req.SiteID,
		UnitID:        req.UnitID,
		TenantID:      req.TenantID,
		AssignedTo:    req.AssignedTo,
		Title:         req.Title,
		Description:   req.Description,
		IssueType:     req.IssueType,
		Priority:      req.Priority,
		Scope:         req.Scope,
		EstimatedCost: req.EstimatedCost,
		DueDate:       req.DueDate,
		Status:        req.Status,
		DocumentType:  req.DocumentType,
	}

	rec, err := s.flow.submit(ctx, form, file)
	if err != nil {
		return nil, err
	}

	return toMaintenanceResponse(rec), nil
}

// ────────────────────── Transition ──────────────────────

func (s *maintenanceService) Transition(ctx context.Context, id int, status string) (*dto.MaintenanceResponse, error) {
	rec, err := s.flow.transition(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponse(rec), nil
}

// ── 内部辅助方法 ──

func toMaintenanceResponse(rec *record.CanonicalRecord) *dto.MaintenanceResponse {
	costs := make([]dto.CostLineResponse, 0, len(rec.Costs))
	for _, c := range rec.Costs {
		costs = append(costs, dto.CostLineResponse{
			Type:        c.Type,
			Description: c.Description,
			Amount:      c.Amount,
		})
	}

	return &dto.MaintenanceResponse{
		ID:            rec.ID,
		SiteID:        rec.SiteID,
		UnitID:        rec.UnitID,
		TenantID:      rec.TenantID,
		AssignedTo:    rec.AssignedTo,
		Title:         rec.Title,
		Description:   rec.Description,
		IssueType:     rec.IssueType,
		Priority:      rec.Priority,
		Scope:         rec.Scope,
		EstimatedCost: rec.EstimatedCost,
		DueDate:       rec.DueDate,
		Status:        rec.Status,
		Documents:     toDocumentResponses(rec.Documents),
		Costs:         costs,
		TotalCost:     record.TotalCost(rec),
	}
}
