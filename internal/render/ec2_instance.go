package render

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/gdamore/tcell/v2"

	"github.com/pagr/pagr/internal/model1"
)

// EC2Instance renders EC2 instances.
type EC2Instance struct {
	Base
}

// Header returns the EC2 instance header. EC2 has no server-side sort,
// so no column is sortable.
func (*EC2Instance) Header(string) model1.Header {
	return model1.Header{
		{Name: "REGION"},
		{Name: "INSTANCE-ID"},
		{Name: "NAME"},
		{Name: "TYPE"},
		{Name: "STATE"},
		{Name: "AZ", Attrs: model1.Attrs{Wide: true}},
		{Name: "PRIVATE-IP"},
		{Name: "PUBLIC-IP", Attrs: model1.Attrs{Wide: true}},
		{Name: "VPC-ID", Attrs: model1.Attrs{Wide: true}},
		{Name: "AGE"},
	}
}

// Render renders an EC2 instance to a row.
func (*EC2Instance) Render(o any, _ string, row *model1.Row) error {
	obj, err := asObject(o)
	if err != nil {
		return err
	}
	instance, ok := obj.GetRaw().(types.Instance)
	if !ok {
		return fmt.Errorf("expected types.Instance, got %T", obj.GetRaw())
	}

	row.ID = fmt.Sprintf("%s/%s", obj.GetRegion(), obj.GetID())
	row.Fields = model1.Fields{
		obj.GetRegion(),
		obj.GetID(),
		NA(obj.GetName()),
		string(instance.InstanceType),
		instanceState(instance),
		instanceAZ(instance),
		StrPtrToStr(instance.PrivateIpAddress),
		StrPtrToStr(instance.PublicIpAddress),
		StrPtrToStr(instance.VpcId),
		ToAge(obj.GetCreatedAt()),
	}
	return nil
}

// ColorerFunc colors rows by instance state.
func (e *EC2Instance) ColorerFunc() model1.ColorerFunc {
	return func(region string, h model1.Header, r model1.Row, selected bool) tcell.Color {
		if selected {
			return model1.HighlightColor
		}
		stateIdx, ok := h.IndexOf("STATE", true)
		if !ok || stateIdx >= len(r.Fields) {
			return model1.DefaultColorer(region, h, r, selected)
		}

		switch r.Fields[stateIdx] {
		case "running":
			return model1.StdColor
		case "pending", "shutting-down", "stopping":
			return model1.PendingColor
		case "stopped", "terminated":
			return model1.MutedColor
		default:
			return model1.StdColor
		}
	}
}

func instanceState(instance types.Instance) string {
	if instance.State == nil {
		return UnknownValue
	}
	return string(instance.State.Name)
}

func instanceAZ(instance types.Instance) string {
	if instance.Placement == nil {
		return NAValue
	}
	return NA(StrPtrToStr(instance.Placement.AvailabilityZone))
}
