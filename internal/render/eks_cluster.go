package render

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/gdamore/tcell/v2"

	"github.com/pagr/pagr/internal/model1"
)

// EKSCluster renders EKS clusters.
type EKSCluster struct {
	Base
}

// Header returns the EKS cluster header.
func (*EKSCluster) Header(string) model1.Header {
	return model1.Header{
		{Name: "REGION"},
		{Name: "NAME"},
		{Name: "VERSION"},
		{Name: "STATUS"},
		{Name: "PLATFORM", Attrs: model1.Attrs{Wide: true}},
		{Name: "ENDPOINT", Attrs: model1.Attrs{Wide: true}},
		{Name: "AGE"},
	}
}

// Render renders an EKS cluster to a row.
func (*EKSCluster) Render(o any, _ string, row *model1.Row) error {
	obj, err := asObject(o)
	if err != nil {
		return err
	}
	cluster, ok := obj.GetRaw().(*types.Cluster)
	if !ok {
		return fmt.Errorf("expected *types.Cluster, got %T", obj.GetRaw())
	}

	row.ID = fmt.Sprintf("%s/%s", obj.GetRegion(), obj.GetName())
	row.Fields = model1.Fields{
		obj.GetRegion(),
		obj.GetName(),
		StrPtrToStr(cluster.Version),
		string(cluster.Status),
		StrPtrToStr(cluster.PlatformVersion),
		StrPtrToStr(cluster.Endpoint),
		ToAge(obj.GetCreatedAt()),
	}
	return nil
}

// ColorerFunc colors rows by cluster status.
func (e *EKSCluster) ColorerFunc() model1.ColorerFunc {
	return func(region string, h model1.Header, r model1.Row, selected bool) tcell.Color {
		if selected {
			return model1.HighlightColor
		}
		statusIdx, ok := h.IndexOf("STATUS", true)
		if !ok || statusIdx >= len(r.Fields) {
			return model1.DefaultColorer(region, h, r, selected)
		}

		switch types.ClusterStatus(r.Fields[statusIdx]) {
		case types.ClusterStatusActive:
			return model1.StdColor
		case types.ClusterStatusCreating, types.ClusterStatusUpdating:
			return model1.PendingColor
		case types.ClusterStatusFailed:
			return model1.ErrColor
		case types.ClusterStatusDeleting:
			return model1.MutedColor
		default:
			return model1.StdColor
		}
	}
}
