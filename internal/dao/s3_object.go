package dao

import (
	"context"
	"fmt"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/pagr/pagr/internal/aws"
)

func init() {
	RegisterPager(&S3ObjectRID, &S3Object{})
}

// S3Object pages through the objects of a bucket using ListObjectsV2
// continuation tokens. Path format: "bucket" or "bucket/prefix/"; the "/"
// delimiter gives folder-like navigation, with common prefixes surfaced
// as folder objects.
//
// S3 lists keys in lexicographic order only; the sort model is ignored.
type S3Object struct {
	Resource
}

// ListPage returns one page of objects under the given bucket and prefix.
func (s *S3Object) ListPage(ctx context.Context, region string, req PageRequest) (PageResult, error) {
	bucket, prefix := parseListPath(req.Path)
	if bucket == "" {
		return PageResult{}, fmt.Errorf("invalid path format, expected 'bucket' or 'bucket/prefix/', got: %s", req.Path)
	}

	client := s.Client().S3Regional(region)
	if client == nil {
		return PageResult{}, fmt.Errorf("failed to get S3 client for region %s", region)
	}

	input := &s3.ListObjectsV2Input{
		Bucket:    &bucket,
		Delimiter: strPtr("/"),
		MaxKeys:   awssdk.Int32(int32(req.PageSize)),
	}
	if prefix != "" {
		input.Prefix = &prefix
	}
	if req.PageToken != "" {
		input.ContinuationToken = &req.PageToken
	}

	output, err := client.ListObjectsV2(ctx, input)
	if err != nil {
		return PageResult{}, aws.WrapAPIError(err, "list objects")
	}

	objects := make([]Object, 0, len(output.Contents)+len(output.CommonPrefixes))
	for _, cp := range output.CommonPrefixes {
		if cp.Prefix != nil {
			objects = append(objects, folderToObject(*cp.Prefix, bucket, region))
		}
	}
	for _, obj := range output.Contents {
		objects = append(objects, objectToObject(obj, bucket, region))
	}

	return PageResult{
		Objects:       objects,
		NextPageToken: aws.SafeString(output.NextContinuationToken),
	}, nil
}

// Get retrieves a single object's metadata. Path format: "bucket/key".
func (s *S3Object) Get(ctx context.Context, path string) (Object, error) {
	bucket, key, ok := strings.Cut(path, "/")
	if !ok || key == "" {
		return nil, fmt.Errorf("invalid object path, expected 'bucket/key', got: %s", path)
	}

	client := s.Client().S3()
	if client == nil {
		return nil, fmt.Errorf("failed to get S3 client")
	}

	output, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, aws.WrapAPIError(err, "head object")
	}

	return &BaseObject{
		ARN:       s3ARN(bucket, key),
		ID:        key,
		Name:      baseName(key),
		Region:    s.Region(),
		CreatedAt: output.LastModified,
		Raw:       output,
	}, nil
}

func objectToObject(obj types.Object, bucket, region string) Object {
	key := aws.SafeString(obj.Key)
	var created *time.Time
	if obj.LastModified != nil {
		created = obj.LastModified
	}

	return &BaseObject{
		ARN:       s3ARN(bucket, key),
		ID:        key,
		Name:      baseName(key),
		Region:    region,
		CreatedAt: created,
		Raw:       obj,
	}
}

func folderToObject(prefix, bucket, region string) Object {
	return &BaseObject{
		ARN:    s3ARN(bucket, prefix),
		ID:     prefix,
		Name:   baseName(strings.TrimSuffix(prefix, "/")) + "/",
		Region: region,
		Raw:    prefix,
	}
}

// parseListPath splits "bucket/prefix/" into bucket and prefix.
func parseListPath(path string) (bucket, prefix string) {
	path = strings.TrimSpace(path)
	bucket, prefix, _ = strings.Cut(path, "/")
	return bucket, prefix
}

func baseName(key string) string {
	if i := strings.LastIndex(strings.TrimSuffix(key, "/"), "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}

func s3ARN(bucket, key string) string {
	return fmt.Sprintf("arn:aws:s3:::%s/%s", bucket, key)
}

func strPtr(s string) *string {
	return &s
}
