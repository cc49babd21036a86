package dao

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/pagr/pagr/internal/aws"
)

func init() {
	RegisterPager(&EKSClusterRID, &EKSCluster{})
}

// EKSCluster pages through EKS clusters with ListClusters nextToken
// cursors, describing each cluster on the page for detail columns.
type EKSCluster struct {
	Resource
}

// ListPage returns one page of clusters in the given region.
func (e *EKSCluster) ListPage(ctx context.Context, region string, req PageRequest) (PageResult, error) {
	client := e.Client().EKS(region)
	if client == nil {
		return PageResult{}, fmt.Errorf("failed to get EKS client for region %s", region)
	}

	input := &eks.ListClustersInput{
		MaxResults: awssdk.Int32(int32(req.PageSize)),
	}
	if req.PageToken != "" {
		input.NextToken = &req.PageToken
	}

	output, err := client.ListClusters(ctx, input)
	if err != nil {
		return PageResult{}, aws.WrapAPIError(err, "list clusters")
	}

	objects := make([]Object, 0, len(output.Clusters))
	for _, name := range output.Clusters {
		describe, err := client.DescribeCluster(ctx, &eks.DescribeClusterInput{
			Name: &name,
		})
		if err != nil {
			return PageResult{}, aws.WrapAPIError(err, fmt.Sprintf("describe cluster %s", name))
		}
		if describe.Cluster != nil {
			objects = append(objects, clusterToObject(describe.Cluster, region))
		}
	}

	return PageResult{
		Objects:       objects,
		NextPageToken: aws.SafeString(output.NextToken),
	}, nil
}

// Get retrieves a single cluster by name.
func (e *EKSCluster) Get(ctx context.Context, path string) (Object, error) {
	region := e.Region()
	client := e.Client().EKS(region)
	if client == nil {
		return nil, fmt.Errorf("failed to get EKS client for region %s", region)
	}

	output, err := client.DescribeCluster(ctx, &eks.DescribeClusterInput{
		Name: &path,
	})
	if err != nil {
		return nil, aws.WrapAPIError(err, "describe cluster")
	}
	if output.Cluster == nil {
		return nil, fmt.Errorf("cluster not found: %s", path)
	}

	return clusterToObject(output.Cluster, region), nil
}

func clusterToObject(cluster *types.Cluster, region string) Object {
	return &BaseObject{
		ARN:       aws.SafeString(cluster.Arn),
		ID:        aws.SafeString(cluster.Name),
		Name:      aws.SafeString(cluster.Name),
		Region:    region,
		Tags:      cluster.Tags,
		CreatedAt: cluster.CreatedAt,
		Raw:       cluster,
	}
}
