package render

import (
	"fmt"

	"github.com/pagr/pagr/internal/dao"
	"github.com/pagr/pagr/internal/model1"
)

// Base provides a base renderer implementation.
type Base struct{}

// ColorerFunc returns the default colorer.
func (*Base) ColorerFunc() model1.ColorerFunc {
	return model1.DefaultColorer
}

// For returns the renderer for the given resource ID, falling back to
// the generic renderer for unknown resources.
func For(rid *dao.ResourceID) model1.Renderer {
	switch rid.String() {
	case dao.EC2InstanceRID.String():
		return &EC2Instance{}
	case dao.S3ObjectRID.String():
		return &S3Object{}
	case dao.IAMUserRID.String():
		return &IAMUser{}
	case dao.EKSClusterRID.String():
		return &EKSCluster{}
	case dao.CFNStackRID.String():
		return &CFNStack{}
	default:
		return &Generic{}
	}
}

// asObject asserts the rendered value down to a dao.Object.
func asObject(o any) (dao.Object, error) {
	obj, ok := o.(dao.Object)
	if !ok {
		return nil, fmt.Errorf("expected dao.Object, got %T", o)
	}
	return obj, nil
}
