package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/helloakshay27/rental-management-sub001/internal/record"
	"github.com/helloakshay27/rental-management-sub001/pkg/redis"
)

// ── 记录流转公共错误 ──

var (
	ErrSubmitInFlight    = errors.New("该记录已有提交在途")
	ErrRecordUnavailable = errors.New("上游返回的记录不可用")
)

// 记录缓存有效期；提交或状态流转成功后立即失效并回填
const recordCacheTTL = 5 * time.Minute

// Upstream 上游物业管理 API 网关接口
type Upstream interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
	Patch(ctx context.Context, path string, body any) ([]byte, error)
}

// recordFlow 单一记录种类的上游读写流程
//
// 合规记录与维保工单共用同一套流程：列表/详情读取归一化、表单装配提交、
// 作用域状态流转。记录的权威数据始终在上游，本地只持有短时缓存；
// 提交成功后以上游回读结果为准，不用本地装配的载荷自行拼接状态。
type recordFlow struct {
	kind   record.Kind
	up     Upstream
	cache  *redis.Client // 可为 nil（降级：每次直连上游）
	logger *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{} // 同一记录的并发提交守卫；新建记录共用键 "new"
}

func newRecordFlow(kind record.Kind, up Upstream, cache *redis.Client, logger *zap.Logger) *recordFlow {
	return &recordFlow{
		kind:     kind,
		up:       up,
		cache:    cache,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

// ────────────────────── 读取 ──────────────────────

func (f *recordFlow) list(ctx context.Context, siteID int, status string) ([]*record.CanonicalRecord, error) {
	path := fmt.Sprintf("%s?site_id=%d", f.kind.Path, siteID)
	if status != "" {
		path += "&status=" + status
	}

	body, err := f.up.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	return record.NormalizeList(f.kind, body), nil
}

func (f *recordFlow) get(ctx context.Context, id int) (*record.CanonicalRecord, error) {
	if f.cache != nil {
		if cached, ok, err := f.cache.GetRecord(ctx, f.kind.Name, id); err == nil && ok {
			if rec := record.Normalize(f.kind, cached); rec != nil {
				return rec, nil
			}
		}
	}

	return f.fetch(ctx, id)
}

// fetch 绕过缓存直连上游，成功后回填缓存
func (f *recordFlow) fetch(ctx context.Context, id int) (*record.CanonicalRecord, error) {
	body, err := f.up.Get(ctx, fmt.Sprintf("%s/%d", f.kind.Path, id))
	if err != nil {
		return nil, err
	}

	rec := record.Normalize(f.kind, body)
	if rec == nil {
		f.logger.Warn("上游记录归一化为空",
			zap.String("kind", f.kind.Name), zap.Int("id", id))
		return nil, ErrRecordUnavailable
	}

	if f.cache != nil {
		if err := f.cache.SetRecord(ctx, f.kind.Name, id, body, recordCacheTTL); err != nil {
			f.logger.Warn("记录缓存写入失败", zap.Error(err))
		}
	}

	return rec, nil
}

// ────────────────────── 提交 ──────────────────────

// submit 装配并提交表单；id 存在走更新（PUT），否则新建（POST）。
// 成功后失效缓存并回读上游最新状态。
func (f *recordFlow) submit(ctx context.Context, form record.FormState, file *record.EncodedFile) (*record.CanonicalRecord, error) {
	guard := "new"
	if form.IsUpdate() {
		guard = form.ID
	}
	if !f.acquire(guard) {
		return nil, ErrSubmitInFlight
	}
	defer f.release(guard)

	payload, err := record.Assemble(f.kind, form, form.IsUpdate(), file)
	if err != nil {
		return nil, err
	}

	var body []byte
	if form.IsUpdate() {
		body, err = f.up.Put(ctx, f.kind.Path+"/"+form.ID, payload)
	} else {
		body, err = f.up.Post(ctx, f.kind.Path, payload)
	}
	if err != nil {
		return nil, err
	}

	return f.refresh(ctx, form.ID, body)
}

// ────────────────────── 状态流转 ──────────────────────

// transition 只携带 status 的作用域载荷；目标状态集合在装配前校验
func (f *recordFlow) transition(ctx context.Context, id int, status string) (*record.CanonicalRecord, error) {
	payload, err := record.StatusPayload(f.kind, status)
	if err != nil {
		return nil, err
	}

	body, err := f.up.Patch(ctx, fmt.Sprintf("%s/%d", f.kind.Path, id), payload)
	if err != nil {
		return nil, err
	}

	return f.refresh(ctx, strconv.Itoa(id), body)
}

// ────────────────────── 内部辅助 ──────────────────────

// refresh 写操作成功后的统一收尾：失效旧缓存，优先用回读保证新鲜度；
// 上游写响应本身携带完整记录时直接采用，省一次往返
func (f *recordFlow) refresh(ctx context.Context, formID string, writeResp []byte) (*record.CanonicalRecord, error) {
	rec := record.Normalize(f.kind, writeResp)

	id := 0
	if rec != nil && rec.ID != 0 {
		id = rec.ID
	} else if formID != "" {
		id, _ = strconv.Atoi(formID)
	}

	if id == 0 {
		// 上游未回传标识（部分创建接口只回 204/空体），无从回读
		if rec != nil {
			return rec, nil
		}
		return nil, ErrRecordUnavailable
	}

	if f.cache != nil {
		if err := f.cache.DeleteRecord(ctx, f.kind.Name, id); err != nil {
			f.logger.Warn("记录缓存失效失败", zap.Error(err))
		}
	}

	return f.fetch(ctx, id)
}

func (f *recordFlow) acquire(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.inflight[key]; busy {
		return false
	}
	f.inflight[key] = struct{}{}
	return true
}

func (f *recordFlow) release(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, key)
}
