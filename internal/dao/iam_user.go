package dao

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/pagr/pagr/internal/aws"
)

func init() {
	RegisterPager(&IAMUserRID, &IAMUser{})
}

// IAMUser pages through IAM users with ListUsers Marker cursors. IAM is
// global; the region argument is ignored.
type IAMUser struct {
	Resource
}

// ListPage returns one page of users.
func (i *IAMUser) ListPage(ctx context.Context, _ string, req PageRequest) (PageResult, error) {
	client := i.Client().IAM()
	if client == nil {
		return PageResult{}, fmt.Errorf("failed to get IAM client")
	}

	input := &iam.ListUsersInput{
		MaxItems: awssdk.Int32(int32(req.PageSize)),
	}
	if req.PageToken != "" {
		input.Marker = &req.PageToken
	}

	output, err := client.ListUsers(ctx, input)
	if err != nil {
		return PageResult{}, aws.WrapAPIError(err, "list users")
	}

	objects := make([]Object, 0, len(output.Users))
	for _, user := range output.Users {
		objects = append(objects, userToObject(user))
	}

	var next string
	if output.IsTruncated {
		next = aws.SafeString(output.Marker)
	}

	return PageResult{
		Objects:       objects,
		NextPageToken: next,
	}, nil
}

// Get retrieves a single user by name.
func (i *IAMUser) Get(ctx context.Context, path string) (Object, error) {
	username := strings.TrimSpace(path)
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	client := i.Client().IAM()
	if client == nil {
		return nil, fmt.Errorf("failed to get IAM client")
	}

	output, err := client.GetUser(ctx, &iam.GetUserInput{
		UserName: &username,
	})
	if err != nil {
		return nil, aws.WrapAPIError(err, "get user")
	}
	if output.User == nil {
		return nil, fmt.Errorf("user not found: %s", username)
	}

	return userToObject(*output.User), nil
}

func userToObject(user types.User) Object {
	tags := make(map[string]string, len(user.Tags))
	for _, tag := range user.Tags {
		if tag.Key != nil && tag.Value != nil {
			tags[*tag.Key] = *tag.Value
		}
	}

	return &BaseObject{
		ARN:       aws.SafeString(user.Arn),
		ID:        aws.SafeString(user.UserId),
		Name:      aws.SafeString(user.UserName),
		Region:    aws.DefaultRegion, // IAM is global
		Tags:      tags,
		CreatedAt: user.CreateDate,
		Raw:       user,
	}
}
