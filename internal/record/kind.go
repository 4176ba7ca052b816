package record

import (
	"errors"
	"fmt"
)

// ── 记录状态常量 ──

const (
	StatusPending    = "pending"
	StatusSubmitted  = "submitted"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var ErrIllegalStatus = errors.New("状态不在该记录种类的合法集合内")

// Kind 记录种类（合规记录 / 维修工单 / 通用文档）
//
// 每个种类在构造时即携带自己的资源键、上游路径、合法状态集合与必填字段清单，
// 下游逻辑只依赖这些属性，不再按种类名反复分支。
type Kind struct {
	Name        string   // 种类标识
	ResourceKey string   // 上游载荷包裹键，如 property_compliance
	Path        string   // 上游集合路径
	Statuses    []string // 合法状态集合
	Required    []string // 提交前必填的表单字段
	FileOnNew   bool     // 新建记录是否必须附带文件
	InlineDocs  bool     // 文档是否内嵌在资源体内（维修工单），否则为顶层字段（合规）
}

// ── 种类定义 ──

var (
	// Compliance 物业合规记录
	Compliance = Kind{
		Name:        "compliance",
		ResourceKey: "property_compliance",
		Path:        "/property_compliances",
		Statuses:    []string{StatusPending, StatusSubmitted, StatusApproved, StatusRejected},
		Required:    []string{"site_id", "compliance_requirement_id"},
		FileOnNew:   true,
		InlineDocs:  false,
	}

	// Maintenance 维修工单
	Maintenance = Kind{
		Name:        "maintenance",
		ResourceKey: "maintenance_request",
		Path:        "/maintenance_requests",
		Statuses:    []string{StatusPending, StatusInProgress, StatusCompleted, StatusRejected},
		Required:    []string{"site_id", "title"},
		FileOnNew:   false,
		InlineDocs:  true,
	}

	// AttachedDocument 通用附件文档
	AttachedDocument = Kind{
		Name:        "document",
		ResourceKey: "attached_document",
		Path:        "/attached_documents",
		Statuses:    []string{StatusPending, StatusSubmitted, StatusApproved, StatusRejected},
		Required:    []string{"site_id"},
		FileOnNew:   true,
		InlineDocs:  false,
	}
)

// StatusAllowed 判断状态是否属于该种类的合法集合
func (k Kind) StatusAllowed(status string) bool {
	for _, s := range k.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidateStatus 校验目标状态；不合法时返回 ErrIllegalStatus
// 是否允许从当前状态迁移到目标状态由上游系统裁决，本地只做集合成员检查
func (k Kind) ValidateStatus(status string) error {
	if !k.StatusAllowed(status) {
		return fmt.Errorf("%w: %s 不接受 %q", ErrIllegalStatus, k.Name, status)
	}
	return nil
}
