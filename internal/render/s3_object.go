package render

import (
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gdamore/tcell/v2"

	"github.com/pagr/pagr/internal/model1"
)

// S3Object renders S3 objects and folder prefixes.
type S3Object struct {
	Base
}

// Header returns the S3 object header. S3 lists keys in lexicographic
// order only, so no column is sortable.
func (*S3Object) Header(string) model1.Header {
	return model1.Header{
		{Name: "NAME"},
		{Name: "KEY", Attrs: model1.Attrs{Wide: true}},
		{Name: "SIZE", Attrs: model1.Attrs{Capacity: true}},
		{Name: "STORAGE-CLASS", Attrs: model1.Attrs{Wide: true}},
		{Name: "AGE"},
	}
}

// Render renders an S3 object to a row. Folder prefixes carry their
// prefix string as the raw value and render with blank size and age.
func (*S3Object) Render(o any, _ string, row *model1.Row) error {
	obj, err := asObject(o)
	if err != nil {
		return err
	}

	row.ID = obj.GetID()
	switch raw := obj.GetRaw().(type) {
	case types.Object:
		row.Fields = model1.Fields{
			obj.GetName(),
			obj.GetID(),
			HumanSize(awssdk.ToInt64(raw.Size)),
			string(raw.StorageClass),
			ToAge(obj.GetCreatedAt()),
		}
	case string:
		row.Fields = model1.Fields{
			obj.GetName(),
			obj.GetID(),
			"",
			"",
			"",
		}
	default:
		return fmt.Errorf("expected types.Object or prefix, got %T", raw)
	}
	return nil
}

// ColorerFunc mutes folder rows.
func (s *S3Object) ColorerFunc() model1.ColorerFunc {
	return func(region string, h model1.Header, r model1.Row, selected bool) tcell.Color {
		if selected {
			return model1.HighlightColor
		}
		if strings.HasSuffix(r.ID, "/") {
			return model1.MutedColor
		}
		return model1.StdColor
	}
}
