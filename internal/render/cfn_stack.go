package render

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/gdamore/tcell/v2"

	"github.com/pagr/pagr/internal/model1"
)

// CFNStack renders CloudFormation stacks.
type CFNStack struct {
	Base
}

// Header returns the CloudFormation stack header.
func (*CFNStack) Header(string) model1.Header {
	return model1.Header{
		{Name: "REGION"},
		{Name: "NAME"},
		{Name: "STATUS"},
		{Name: "REASON", Attrs: model1.Attrs{Wide: true}},
		{Name: "UPDATED", Attrs: model1.Attrs{Wide: true}},
		{Name: "AGE"},
	}
}

// Render renders a stack to a row. The pager yields StackSummary values
// from ListStacks and full Stack values from Get.
func (*CFNStack) Render(o any, _ string, row *model1.Row) error {
	obj, err := asObject(o)
	if err != nil {
		return err
	}

	var status, reason, updated string
	switch raw := obj.GetRaw().(type) {
	case types.StackSummary:
		status = string(raw.StackStatus)
		reason = StrPtrToStr(raw.StackStatusReason)
		updated = ToAge(raw.LastUpdatedTime)
	case types.Stack:
		status = string(raw.StackStatus)
		reason = StrPtrToStr(raw.StackStatusReason)
		updated = ToAge(raw.LastUpdatedTime)
	default:
		return fmt.Errorf("expected stack summary or stack, got %T", raw)
	}

	row.ID = fmt.Sprintf("%s/%s", obj.GetRegion(), obj.GetName())
	row.Fields = model1.Fields{
		obj.GetRegion(),
		obj.GetName(),
		status,
		reason,
		updated,
		ToAge(obj.GetCreatedAt()),
	}
	return nil
}

// ColorerFunc colors rows by stack status.
func (c *CFNStack) ColorerFunc() model1.ColorerFunc {
	return func(region string, h model1.Header, r model1.Row, selected bool) tcell.Color {
		if selected {
			return model1.HighlightColor
		}
		statusIdx, ok := h.IndexOf("STATUS", true)
		if !ok || statusIdx >= len(r.Fields) {
			return model1.DefaultColorer(region, h, r, selected)
		}

		status := r.Fields[statusIdx]
		switch {
		case strings.HasSuffix(status, "_FAILED"), strings.Contains(status, "ROLLBACK"):
			return model1.ErrColor
		case strings.HasSuffix(status, "_IN_PROGRESS"):
			return model1.PendingColor
		case status == string(types.StackStatusDeleteComplete):
			return model1.MutedColor
		default:
			return model1.StdColor
		}
	}
}
