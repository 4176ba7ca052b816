package record

import (
	"errors"
	"testing"
)

func TestValidateStatus_PerKindLegalSets(t *testing.T) {
	cases := []struct {
		kind   Kind
		status string
		legal  bool
	}{
		{Compliance, StatusApproved, true},
		{Compliance, StatusInProgress, false},
		{Maintenance, StatusInProgress, true},
		{Maintenance, StatusSubmitted, false},
		{AttachedDocument, StatusSubmitted, true},
		{AttachedDocument, StatusCompleted, false},
	}

	for _, c := range cases {
		err := c.kind.ValidateStatus(c.status)
		if c.legal && err != nil {
			t.Errorf("%s 应接受状态 %q，实际=%v", c.kind.Name, c.status, err)
		}
		if !c.legal {
			if !errors.Is(err, ErrIllegalStatus) {
				t.Errorf("%s 不应接受状态 %q，实际=%v", c.kind.Name, c.status, err)
			}
		}
	}
}

func TestKindDefinitions(t *testing.T) {
	if Compliance.ResourceKey != "property_compliance" || Compliance.Path != "/property_compliances" {
		t.Errorf("合规种类资源定义错误: %q %q", Compliance.ResourceKey, Compliance.Path)
	}
	if !Compliance.FileOnNew || Compliance.InlineDocs {
		t.Error("合规记录应要求新建附文件且文档置于顶层字段")
	}
	if Maintenance.FileOnNew || !Maintenance.InlineDocs {
		t.Error("维修工单新建不强制附文件且文档应内嵌在资源体内")
	}
	if AttachedDocument.ResourceKey != "attached_document" {
		t.Errorf("通用文档资源键错误: %q", AttachedDocument.ResourceKey)
	}
}
