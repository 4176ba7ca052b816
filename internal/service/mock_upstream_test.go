package service

import (
	"context"
	"sync"

	"github.com/helloakshay27/rental-management-sub001/internal/repository"
)

// ── Mock Upstream ──

type upstreamCall struct {
	method string
	path   string
	body   any
}

// mockUpstream 以 "METHOD path" 为键返回预置响应；记录全部请求供断言
type mockUpstream struct {
	mu        sync.Mutex
	responses map[string][]byte
	errs      map[string]error
	calls     []upstreamCall

	// 并发提交守卫测试用：entered 非 nil 时请求进入即发信号，
	// gate 非 nil 时请求阻塞至放行
	entered chan struct{}
	gate    chan struct{}
}

func newMockUpstream() *mockUpstream {
	return &mockUpstream{
		responses: make(map[string][]byte),
		errs:      make(map[string]error),
	}
}

func (m *mockUpstream) set(method, path string, body []byte) {
	m.responses[method+" "+path] = body
}

func (m *mockUpstream) setErr(method, path string, err error) {
	m.errs[method+" "+path] = err
}

func (m *mockUpstream) do(method, path string, body any) ([]byte, error) {
	if m.entered != nil {
		m.entered <- struct{}{}
	}
	if m.gate != nil {
		<-m.gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, upstreamCall{method: method, path: path, body: body})

	key := method + " " + path
	if err, ok := m.errs[key]; ok {
		return nil, err
	}
	return m.responses[key], nil
}

func (m *mockUpstream) Get(_ context.Context, path string) ([]byte, error) {
	return m.do("GET", path, nil)
}

func (m *mockUpstream) Post(_ context.Context, path string, body any) ([]byte, error) {
	return m.do("POST", path, body)
}

func (m *mockUpstream) Put(_ context.Context, path string, body any) ([]byte, error) {
	return m.do("PUT", path, body)
}

func (m *mockUpstream) Patch(_ context.Context, path string, body any) ([]byte, error) {
	return m.do("PATCH", path, body)
}

func (m *mockUpstream) lastCall() *upstreamCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return &m.calls[len(m.calls)-1]
}

func (m *mockUpstream) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// ── 测试辅助 ──

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:     newMockUserRepo(),
		Zone:     newMockZoneRepo(),
		City:     newMockCityRepo(),
		Vendor:   newMockVendorRepo(),
		Landlord: newMockLandlordRepo(),
		Property: newMockPropertyRepo(),
		Tenant:   newMockTenantRepo(),
	}
}
