package dao

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudcontrol"

	"github.com/pagr/pagr/internal/aws"
)

func init() {
	RegisterPager(&CloudControlRID, &CloudControlResource{})
}

// CloudControlResource pages through arbitrary resources via the Cloud
// Control API. The request path carries the CloudFormation type name,
// e.g. "AWS::Logs::LogGroup".
type CloudControlResource struct {
	Resource
}

// ListPage returns one page of resources of the requested type.
func (c *CloudControlResource) ListPage(ctx context.Context, region string, req PageRequest) (PageResult, error) {
	if req.Path == "" {
		return PageResult{}, fmt.Errorf("cloud control listing requires a type name path, e.g. AWS::Logs::LogGroup")
	}

	client := c.Client().CloudControl(region)
	if client == nil {
		return PageResult{}, fmt.Errorf("failed to get Cloud Control client for region %s", region)
	}

	input := &cloudcontrol.ListResourcesInput{
		TypeName:   &req.Path,
		MaxResults: awssdk.Int32(int32(req.PageSize)),
	}
	if req.PageToken != "" {
		input.NextToken = &req.PageToken
	}

	output, err := client.ListResources(ctx, input)
	if err != nil {
		return PageResult{}, aws.WrapAPIError(err, fmt.Sprintf("list %s resources", req.Path))
	}

	objects := make([]Object, 0, len(output.ResourceDescriptions))
	for _, desc := range output.ResourceDescriptions {
		id := aws.SafeString(desc.Identifier)
		objects = append(objects, &BaseObject{
			ID:     id,
			Name:   id,
			Region: region,
			Raw:    desc,
		})
	}

	return PageResult{
		Objects:       objects,
		NextPageToken: aws.SafeString(output.NextToken),
	}, nil
}

// Get retrieves a single resource by "TypeName|identifier" path.
func (c *CloudControlResource) Get(ctx context.Context, path string) (Object, error) {
	typeName, id, err := splitTypePath(path)
	if err != nil {
		return nil, err
	}

	region := c.Region()
	client := c.Client().CloudControl(region)
	if client == nil {
		return nil, fmt.Errorf("failed to get Cloud Control client for region %s", region)
	}

	output, err := client.GetResource(ctx, &cloudcontrol.GetResourceInput{
		TypeName:   &typeName,
		Identifier: &id,
	})
	if err != nil {
		return nil, aws.WrapAPIError(err, "get resource")
	}
	if output.ResourceDescription == nil {
		return nil, fmt.Errorf("resource not found: %s", path)
	}

	return &BaseObject{
		ID:     aws.SafeString(output.ResourceDescription.Identifier),
		Name:   aws.SafeString(output.ResourceDescription.Identifier),
		Region: region,
		Raw:    output.ResourceDescription,
	}, nil
}

func splitTypePath(path string) (typeName, id string, err error) {
	for i := 0; i < len(path); i++ {
		if path[i] == '|' {
			return path[:i], path[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("invalid resource path, expected 'TypeName|identifier', got: %s", path)
}
