package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/dto"
	"github.com/helloakshay27/rental-management-sub001/internal/record"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/internal/upstream"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	changePassErr error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string) error {
	return m.logoutErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock ComplianceService ──

type mockComplianceService struct {
	listResult   []dto.ComplianceResponse
	listErr      error
	getResult    *dto.ComplianceResponse
	getErr       error
	formResult   *dto.ComplianceFormResponse
	formErr      error
	submitResult *dto.ComplianceResponse
	submitErr    error
	transResult  *dto.ComplianceResponse
	transErr     error

	// 记录最近一次调用入参
	submitReq   *dto.ComplianceSubmitRequest
	submitFile  *record.EncodedFile
	transID     int
	transStatus string
}

func (m *mockComplianceService) List(_ context.Context, _ *dto.ComplianceListRequest) ([]dto.ComplianceResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockComplianceService) Get(_ context.Context, _ int) (*dto.ComplianceResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockComplianceService) GetForm(_ context.Context, _ int) (*dto.ComplianceFormResponse, error) {
	return m.formResult, m.formErr
}
func (m *mockComplianceService) Submit(_ context.Context, req *dto.ComplianceSubmitRequest, file *record.EncodedFile) (*dto.ComplianceResponse, error) {
	m.submitReq = req
	m.submitFile = file
	return m.submitResult, m.submitErr
}
func (m *mockComplianceService) Transition(_ context.Context, id int, status string) (*dto.ComplianceResponse, error) {
	m.transID = id
	m.transStatus = status
	return m.transResult, m.transErr
}

// ═══════════════════════════════════════════════════════════
// 测试辅助
// ═══════════════════════════════════════════════════════════

func performRequest(r http.Handler, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法 JSON: %v", err)
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// Auth Handler 测试
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         dto.UserResponse{ID: "user-001", Email: "admin@example.com"},
		},
	}
	h := NewAuthHandler(mock, nil)

	r := gin.New()
	r.POST("/auth/login", h.Login)

	body := bytes.NewBufferString(`{"email": "admin@example.com", "password": "secret123"}`)
	w := performRequest(r, http.MethodPost, "/auth/login", body, "application/json")

	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d，响应=%s", w.Code, w.Body.String())
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock, nil)

	r := gin.New()
	r.POST("/auth/login", h.Login)

	body := bytes.NewBufferString(`{"email": "admin@example.com", "password": "wrong1"}`)
	w := performRequest(r, http.MethodPost, "/auth/login", body, "application/json")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望401，实际=%d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	r := gin.New()
	r.POST("/auth/login", h.Login)

	body := bytes.NewBufferString(`{"email": "not-an-email"}`)
	w := performRequest(r, http.MethodPost, "/auth/login", body, "application/json")

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望400，实际=%d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Compliance Handler 测试
// ═══════════════════════════════════════════════════════════

func TestComplianceHandler_List_RequiresSiteID(t *testing.T) {
	h := NewComplianceHandler(&mockComplianceService{})

	r := gin.New()
	r.GET("/compliances", h.ListCompliances)

	w := performRequest(r, http.MethodGet, "/compliances", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少 site_id 应为400，实际=%d", w.Code)
	}

	w = performRequest(r, http.MethodGet, "/compliances?site_id=3", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("期望200，实际=%d", w.Code)
	}
}

func TestComplianceHandler_Get_BadID(t *testing.T) {
	h := NewComplianceHandler(&mockComplianceService{})

	r := gin.New()
	r.GET("/compliances/:id", h.GetCompliance)

	w := performRequest(r, http.MethodGet, "/compliances/abc", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("非数字ID应为400，实际=%d", w.Code)
	}
}

func TestComplianceHandler_Get_UpstreamNotFound(t *testing.T) {
	mock := &mockComplianceService{
		getErr: &upstream.TransportError{StatusCode: 404, Message: "not found"},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.GET("/compliances/:id", h.GetCompliance)

	w := performRequest(r, http.MethodGet, "/compliances/57", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("上游404应映射为404，实际=%d", w.Code)
	}
}

func TestComplianceHandler_Get_UpstreamFailure(t *testing.T) {
	mock := &mockComplianceService{
		getErr: &upstream.TransportError{StatusCode: 500, Message: "上游服务异常"},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.GET("/compliances/:id", h.GetCompliance)

	w := performRequest(r, http.MethodGet, "/compliances/57", nil, "")
	if w.Code != http.StatusBadGateway {
		t.Errorf("上游故障应映射为502，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Details != "上游服务异常" {
		t.Errorf("上游错误信息应透传至 details，实际=%q", resp.Details)
	}
}

func TestComplianceHandler_Submit_MultipartWithFile(t *testing.T) {
	mock := &mockComplianceService{
		submitResult: &dto.ComplianceResponse{ID: 57, Status: "pending"},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.POST("/compliances", h.SubmitCompliance)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("site_id", "3")
	_ = mw.WriteField("compliance_requirement_id", "7")
	_ = mw.WriteField("due_date", "2026-09-15")
	fw, _ := mw.CreateFormFile("file", "cert.pdf")
	_, _ = fw.Write([]byte("%PDF-1.4 fake"))
	_ = mw.Close()

	w := performRequest(r, http.MethodPost, "/compliances", &buf, mw.FormDataContentType())
	if w.Code != http.StatusCreated {
		t.Fatalf("新建期望201，实际=%d，响应=%s", w.Code, w.Body.String())
	}

	if mock.submitReq == nil || mock.submitReq.SiteID != "3" {
		t.Errorf("表单字段未透传: %+v", mock.submitReq)
	}
	if mock.submitFile == nil {
		t.Fatal("文件应编码后传入业务层")
	}
	if mock.submitFile.Name != "cert.pdf" {
		t.Errorf("期望文件名=cert.pdf，实际=%s", mock.submitFile.Name)
	}
	if !strings.HasPrefix(mock.submitFile.DataURL, "data:") {
		t.Errorf("文件应编码为 data URL，实际前缀=%q", mock.submitFile.DataURL[:16])
	}
}

func TestComplianceHandler_Submit_NoFilePassesNil(t *testing.T) {
	mock := &mockComplianceService{
		submitResult: &dto.ComplianceResponse{ID: 57},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.POST("/compliances", h.SubmitCompliance)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("id", "57")
	_ = mw.WriteField("site_id", "3")
	_ = mw.Close()

	w := performRequest(r, http.MethodPost, "/compliances", &buf, mw.FormDataContentType())
	if w.Code != http.StatusOK {
		t.Fatalf("更新期望200，实际=%d", w.Code)
	}
	if mock.submitFile != nil {
		t.Error("无文件字段时应传 nil")
	}
}

func TestComplianceHandler_Submit_ValidationError(t *testing.T) {
	mock := &mockComplianceService{
		submitErr: &record.ValidationError{Fields: []string{"site_id", "file"}},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.POST("/compliances", h.SubmitCompliance)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("due_date", "2026-09-15")
	_ = mw.Close()

	w := performRequest(r, http.MethodPost, "/compliances", &buf, mw.FormDataContentType())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("校验失败期望400，实际=%d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Details != "site_id, file" {
		t.Errorf("缺失字段应在 details 中列出，实际=%q", resp.Details)
	}
}

func TestComplianceHandler_Submit_InFlightConflict(t *testing.T) {
	mock := &mockComplianceService{submitErr: service.ErrSubmitInFlight}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.POST("/compliances", h.SubmitCompliance)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("id", "57")
	_ = mw.Close()

	w := performRequest(r, http.MethodPost, "/compliances", &buf, mw.FormDataContentType())
	if w.Code != http.StatusConflict {
		t.Errorf("在途提交期望409，实际=%d", w.Code)
	}
}

func TestComplianceHandler_Transition_Success(t *testing.T) {
	mock := &mockComplianceService{
		transResult: &dto.ComplianceResponse{ID: 57, Status: "approved"},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.PATCH("/compliances/:id/status", h.TransitionCompliance)

	body := bytes.NewBufferString(`{"status": "approved"}`)
	w := performRequest(r, http.MethodPatch, "/compliances/57/status", body, "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际=%d", w.Code)
	}
	if mock.transID != 57 || mock.transStatus != "approved" {
		t.Errorf("流转入参错误: id=%d status=%s", mock.transID, mock.transStatus)
	}
}

func TestComplianceHandler_Transition_IllegalStatus(t *testing.T) {
	mock := &mockComplianceService{transErr: record.ErrIllegalStatus}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.PATCH("/compliances/:id/status", h.TransitionCompliance)

	body := bytes.NewBufferString(`{"status": "in-progress"}`)
	w := performRequest(r, http.MethodPatch, "/compliances/57/status", body, "application/json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法状态期望400，实际=%d", w.Code)
	}
}

func TestComplianceHandler_GetForm_NewVsExisting(t *testing.T) {
	mock := &mockComplianceService{
		formResult: &dto.ComplianceFormResponse{Status: "pending"},
	}
	h := NewComplianceHandler(mock)

	r := gin.New()
	r.GET("/compliances/form", h.GetComplianceForm)

	w := performRequest(r, http.MethodGet, "/compliances/form", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("新建表单期望200，实际=%d", w.Code)
	}

	w = performRequest(r, http.MethodGet, "/compliances/form?id=abc", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("非数字ID期望400，实际=%d", w.Code)
	}
}
