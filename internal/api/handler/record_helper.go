package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helloakshay27/rental-management-sub001/internal/record"
	"github.com/helloakshay27/rental-management-sub001/internal/service"
	"github.com/helloakshay27/rental-management-sub001/internal/upstream"
	"github.com/helloakshay27/rental-management-sub001/pkg/response"
)

// ── 合规/维保记录共用的 HTTP 辅助 ──

// formFile 读取 multipart 表单中的 "file" 字段并编码为 data URL；
// 字段缺席返回 (nil, nil)，由业务层决定缺文件是否合法
func formFile(c *gin.Context) (*record.EncodedFile, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, &record.EncodingError{Name: fh.Filename, Err: err}
	}
	defer f.Close()

	return record.EncodeAttachment(fh.Filename, fh.Header.Get("Content-Type"), f)
}

// handleRecordError 统一处理合规/维保记录的业务与上游错误
func handleRecordError(c *gin.Context, err error) {
	var verr *record.ValidationError
	var eerr *record.EncodingError
	var terr *upstream.TransportError

	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, 20001,
			"缺少必填字段", strings.Join(verr.Fields, ", "))
	case errors.As(err, &eerr):
		response.BadRequest(c, 20002, "附件读取或编码失败")
	case errors.Is(err, record.ErrIllegalStatus):
		response.BadRequest(c, 20003, "目标状态不在该记录种类的合法集合内")
	case errors.Is(err, service.ErrSubmitInFlight):
		response.Conflict(c, 20004, "该记录已有提交在途")
	case errors.Is(err, service.ErrRecordUnavailable):
		response.BadGateway(c, 20005, "上游返回的记录不可用")
	case errors.As(err, &terr):
		if terr.StatusCode == http.StatusNotFound {
			response.NotFound(c, 20006, "记录不存在")
			return
		}
		response.ErrorWithDetails(c, http.StatusBadGateway, 20007,
			"上游服务调用失败", terr.Message)
	default:
		response.InternalError(c)
	}
}
