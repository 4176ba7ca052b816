package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// ── 测试辅助 ──

func setupTestCalendarService() (CalendarService, *mockUpstream) {
	up := newMockUpstream()
	compliance := newRecordFlow(record.Compliance, up, nil, zap.NewNop())
	maintenance := newRecordFlow(record.Maintenance, up, nil, zap.NewNop())
	svc := NewCalendarService(compliance, maintenance, zap.NewNop())
	return svc, up
}

// ── DueDateFeed 测试 ──

func TestCalendarService_DueDateFeed_Success(t *testing.T) {
	svc, up := setupTestCalendarService()
	up.set("GET", "/property_compliances?site_id=3", []byte(`[
		{"id": 57, "site_id": 3, "status": "pending", "due_date": "2026-09-15T00:00:00Z"}
	]`))
	up.set("GET", "/maintenance_requests?site_id=3", []byte(`[
		{"id": 12, "site_id": 3, "title": "水管漏水", "status": "in-progress", "due_date": "2026-09-20"}
	]`))

	feed, err := svc.DueDateFeed(context.Background(), 3)
	if err != nil {
		t.Fatalf("DueDateFeed 应成功: %v", err)
	}
	if !strings.Contains(feed, "BEGIN:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	if strings.Count(feed, "BEGIN:VEVENT") != 2 {
		t.Errorf("期望2个事件，实际输出:\n%s", feed)
	}
	if !strings.Contains(feed, "compliance-57@rental-management") {
		t.Error("合规事件 UID 缺失")
	}
	if !strings.Contains(feed, "水管漏水") {
		t.Error("维保事件应以标题为摘要")
	}
}

func TestCalendarService_DueDateFeed_SkipsClosedAndUndated(t *testing.T) {
	svc, up := setupTestCalendarService()
	up.set("GET", "/property_compliances?site_id=3", []byte(`[
		{"id": 57, "site_id": 3, "status": "approved", "due_date": "2026-09-15"},
		{"id": 58, "site_id": 3, "status": "pending"}
	]`))
	up.set("GET", "/maintenance_requests?site_id=3", []byte(`[
		{"id": 12, "site_id": 3, "status": "completed", "due_date": "2026-09-20"}
	]`))

	_, err := svc.DueDateFeed(context.Background(), 3)
	if !errors.Is(err, ErrCalendarEmpty) {
		t.Errorf("已完结或无截止日期的记录不应产出事件，期望 ErrCalendarEmpty，实际: %v", err)
	}
}
