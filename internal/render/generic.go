package render

import (
	"github.com/pagr/pagr/internal/model1"
)

// Generic renders any dao.Object from its common metadata. The sortable
// column ids line up with the field ids the in-memory pager orders by.
type Generic struct {
	Base
}

// Header returns the generic header.
func (*Generic) Header(string) model1.Header {
	return model1.Header{
		{ID: "region", Name: "REGION", Attrs: model1.Attrs{Sortable: true}},
		{ID: "id", Name: "ID", Attrs: model1.Attrs{Sortable: true}},
		{ID: "name", Name: "NAME", Attrs: model1.Attrs{Sortable: true}},
		{ID: "arn", Name: "ARN", Attrs: model1.Attrs{Wide: true, Sortable: true}},
		{ID: "created", Name: "AGE", Attrs: model1.Attrs{Sortable: true}},
	}
}

// Render renders an object to a row.
func (*Generic) Render(o any, _ string, row *model1.Row) error {
	obj, err := asObject(o)
	if err != nil {
		return err
	}

	row.ID = obj.GetID()
	row.Fields = model1.Fields{
		obj.GetRegion(),
		obj.GetID(),
		NA(obj.GetName()),
		obj.GetARN(),
		ToAge(obj.GetCreatedAt()),
	}
	return nil
}
