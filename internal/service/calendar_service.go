package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/record"
)

// ── 日历模块业务错误 ──

var (
	ErrCalendarEmpty = errors.New("该站点暂无带截止日期的记录")
)

// CalendarService 截止日期日历订阅业务接口
//
// 将站点内合规记录与维保工单的截止日期生成标准 iCalendar (RFC 5545) 订阅源，
// 供管理员在日历客户端中订阅。已完结状态（approved/completed）的记录不进日历。
type CalendarService interface {
	// DueDateFeed 生成指定站点的截止日期 ICS 内容
	DueDateFeed(ctx context.Context, siteID int) (string, error)
}

type calendarService struct {
	compliance  *recordFlow
	maintenance *recordFlow
	logger      *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(compliance, maintenance *recordFlow, logger *zap.Logger) CalendarService {
	return &calendarService{
		compliance:  compliance,
		maintenance: maintenance,
		logger:      logger,
	}
}

// ────────────────────── DueDateFeed ──────────────────────

func (s *calendarService) DueDateFeed(ctx context.Context, siteID int) (string, error) {
	compliances, err := s.compliance.list(ctx, siteID, "")
	if err != nil {
		s.logger.Error("拉取合规记录失败", zap.Int("site_id", siteID), zap.Error(err))
		return "", err
	}

	maintenances, err := s.maintenance.list(ctx, siteID, "")
	if err != nil {
		s.logger.Error("拉取维保工单失败", zap.Int("site_id", siteID), zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rental-management//due-dates//CN")

	count := 0
	now := time.Now()

	for _, rec := range compliances {
		if rec.Status == record.StatusApproved {
			continue
		}
		summary := fmt.Sprintf("合规到期 #%d", rec.ID)
		if added := s.addDueEvent(cal, "compliance", rec.ID, rec.DueDate, summary, rec.Remarks, now); added {
			count++
		}
	}

	for _, rec := range maintenances {
		if rec.Status == record.StatusCompleted {
			continue
		}
		summary := fmt.Sprintf("维保截止 #%d", rec.ID)
		if rec.Title != "" {
			summary = fmt.Sprintf("维保截止: %s", rec.Title)
		}
		if added := s.addDueEvent(cal, "maintenance", rec.ID, rec.DueDate, summary, rec.Description, now); added {
			count++
		}
	}

	if count == 0 {
		return "", ErrCalendarEmpty
	}

	return cal.Serialize(), nil
}

// ── 内部辅助方法 ──

// addDueEvent 截止日期生成全天事件；日期缺失或不可解析时跳过
func (s *calendarService) addDueEvent(cal *ics.Calendar, kind string, id int, dueDate, summary, description string, stamp time.Time) bool {
	if len(dueDate) < 10 {
		return false
	}

	day, err := time.Parse("2006-01-02", dueDate[:10])
	if err != nil {
		s.logger.Warn("截止日期无法解析，跳过日历事件",
			zap.String("kind", kind), zap.Int("id", id), zap.String("due_date", dueDate))
		return false
	}

	event := cal.AddEvent(fmt.Sprintf("%s-%d@rental-management", kind, id))
	event.SetDtStampTime(stamp)
	event.SetAllDayStartAt(day)
	event.SetAllDayEndAt(day.AddDate(0, 0, 1))
	event.SetSummary(summary)
	if description != "" {
		event.SetDescription(description)
	}

	return true
}
