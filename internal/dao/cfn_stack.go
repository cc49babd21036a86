package dao

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/pagr/pagr/internal/aws"
)

func init() {
	RegisterPager(&CFNStackRID, &CFNStack{})
}

// CFNStack pages through CloudFormation stacks with ListStacks NextToken
// cursors. The API sizes its own pages; the requested page size is
// advisory only.
type CFNStack struct {
	Resource
}

// ListPage returns one page of stack summaries in the given region.
func (c *CFNStack) ListPage(ctx context.Context, region string, req PageRequest) (PageResult, error) {
	client := c.Client().CloudFormation(region)
	if client == nil {
		return PageResult{}, fmt.Errorf("failed to get CloudFormation client for region %s", region)
	}

	input := &cloudformation.ListStacksInput{}
	if req.PageToken != "" {
		input.NextToken = &req.PageToken
	}

	output, err := client.ListStacks(ctx, input)
	if err != nil {
		return PageResult{}, aws.WrapAPIError(err, "list stacks")
	}

	objects := make([]Object, 0, len(output.StackSummaries))
	for _, summary := range output.StackSummaries {
		objects = append(objects, stackToObject(summary, region))
	}

	return PageResult{
		Objects:       objects,
		NextPageToken: aws.SafeString(output.NextToken),
	}, nil
}

// Get retrieves a single stack by name.
func (c *CFNStack) Get(ctx context.Context, path string) (Object, error) {
	region := c.Region()
	client := c.Client().CloudFormation(region)
	if client == nil {
		return nil, fmt.Errorf("failed to get CloudFormation client for region %s", region)
	}

	output, err := client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: &path,
	})
	if err != nil {
		return nil, aws.WrapAPIError(err, "describe stack")
	}
	if len(output.Stacks) == 0 {
		return nil, fmt.Errorf("stack not found: %s", path)
	}

	stack := output.Stacks[0]
	return &BaseObject{
		ARN:       aws.SafeString(stack.StackId),
		ID:        aws.SafeString(stack.StackId),
		Name:      aws.SafeString(stack.StackName),
		Region:    region,
		CreatedAt: stack.CreationTime,
		Raw:       stack,
	}, nil
}

func stackToObject(summary types.StackSummary, region string) Object {
	return &BaseObject{
		ARN:       aws.SafeString(summary.StackId),
		ID:        aws.SafeString(summary.StackId),
		Name:      aws.SafeString(summary.StackName),
		Region:    region,
		CreatedAt: summary.CreationTime,
		Raw:       summary,
	}
}
