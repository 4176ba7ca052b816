package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// CalendarHandler 截止日期日历 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// DueDateFeed 站点截止日期 ICS 订阅源
// GET /api/v1/calendar/due-dates.ics?site_id=3
func (h *CalendarHandler) DueDateFeed(c *gin.Context) {
	siteID, err := strconv.Atoi(c.Query("site_id"))
	if err != nil || siteID <= 0 {
		response.BadRequest(c, 10001, "site_id 应为正整数")
		return
	}

	feed, err := h.calendarSvc.DueDateFeed(c.Request.Context(), siteID)
	if err != nil {
		if errors.Is(err, service.ErrCalendarEmpty) {
			response.NotFound(c, 22001, "该站点暂无带截止日期的记录")
			return
		}
		handleRecordError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="due_dates.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
