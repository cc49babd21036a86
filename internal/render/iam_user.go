package render

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/pagr/pagr/internal/model1"
)

// IAMUser renders IAM users.
type IAMUser struct {
	Base
}

// Header returns the IAM user header.
func (*IAMUser) Header(string) model1.Header {
	return model1.Header{
		{Name: "NAME"},
		{Name: "USER-ID"},
		{Name: "ARN", Attrs: model1.Attrs{Wide: true}},
		{Name: "PATH", Attrs: model1.Attrs{Wide: true}},
		{Name: "LAST-USED"},
		{Name: "AGE"},
	}
}

// Render renders an IAM user to a row.
func (*IAMUser) Render(o any, _ string, row *model1.Row) error {
	obj, err := asObject(o)
	if err != nil {
		return err
	}
	user, ok := obj.GetRaw().(types.User)
	if !ok {
		return fmt.Errorf("expected types.User, got %T", obj.GetRaw())
	}

	row.ID = obj.GetID()
	row.Fields = model1.Fields{
		obj.GetName(),
		obj.GetID(),
		obj.GetARN(),
		StrPtrToStr(user.Path),
		ToAge(user.PasswordLastUsed),
		ToAge(obj.GetCreatedAt()),
	}
	return nil
}
