package dao

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pagr/pagr/internal/aws"
)

func init() {
	RegisterPager(&EC2InstanceRID, &EC2Instance{})
}

// EC2Instance pages through EC2 instances with DescribeInstances
// NextToken cursors. The API rejects MaxResults below 5, so the
// effective page size is clamped.
type EC2Instance struct {
	Resource
}

const ec2MinPageSize = 5

// ListPage returns one page of instances in the given region.
func (e *EC2Instance) ListPage(ctx context.Context, region string, req PageRequest) (PageResult, error) {
	client := e.Client().EC2(region)
	if client == nil {
		return PageResult{}, fmt.Errorf("failed to get EC2 client for region %s", region)
	}

	size := req.PageSize
	if size < ec2MinPageSize {
		size = ec2MinPageSize
	}

	input := &ec2.DescribeInstancesInput{
		MaxResults: awssdk.Int32(int32(size)),
	}
	if req.PageToken != "" {
		input.NextToken = &req.PageToken
	}

	output, err := client.DescribeInstances(ctx, input)
	if err != nil {
		return PageResult{}, aws.WrapAPIError(err, "describe instances")
	}

	var objects []Object
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			objects = append(objects, instanceToObject(instance, region))
		}
	}

	return PageResult{
		Objects:       objects,
		NextPageToken: aws.SafeString(output.NextToken),
	}, nil
}

// Get retrieves a single instance by ID.
func (e *EC2Instance) Get(ctx context.Context, path string) (Object, error) {
	region := e.Region()
	client := e.Client().EC2(region)
	if client == nil {
		return nil, fmt.Errorf("failed to get EC2 client for region %s", region)
	}

	output, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{path},
	})
	if err != nil {
		return nil, aws.WrapAPIError(err, "describe instance")
	}

	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			return instanceToObject(instance, region), nil
		}
	}

	return nil, fmt.Errorf("instance not found: %s", path)
}

func instanceToObject(instance types.Instance, region string) Object {
	tags := make(map[string]string, len(instance.Tags))
	name := ""
	for _, tag := range instance.Tags {
		if tag.Key == nil || tag.Value == nil {
			continue
		}
		tags[*tag.Key] = *tag.Value
		if *tag.Key == "Name" {
			name = *tag.Value
		}
	}

	id := aws.SafeString(instance.InstanceId)
	if name == "" {
		name = id
	}

	return &BaseObject{
		ID:        id,
		Name:      name,
		Region:    region,
		Tags:      tags,
		CreatedAt: instance.LaunchTime,
		Raw:       instance,
	}
}
