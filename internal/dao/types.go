package dao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pagr/pagr/internal/aws"
)

// ResourceID identifies a browsable resource type.
type ResourceID struct {
	Service  string // e.g. "ec2", "s3", "iam"
	Resource string // e.g. "instance", "object", "user"
}

// String returns a string representation in the form "service/resource".
func (r ResourceID) String() string {
	return fmt.Sprintf("%s/%s", r.Service, r.Resource)
}

// Parse parses a string in the form "service/resource" into a ResourceID.
func (r *ResourceID) Parse(s string) error {
	service, resource, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || service == "" || resource == "" {
		return fmt.Errorf("invalid resource ID format: %s (expected service/resource)", s)
	}
	r.Service, r.Resource = service, resource
	return nil
}

// Predefined ResourceID variables for the supported sources.
var (
	EC2InstanceRID  = ResourceID{Service: "ec2", Resource: "instance"}
	S3ObjectRID     = ResourceID{Service: "s3", Resource: "object"}
	IAMUserRID      = ResourceID{Service: "iam", Resource: "user"}
	EKSClusterRID   = ResourceID{Service: "eks", Resource: "cluster"}
	CFNStackRID     = ResourceID{Service: "cfn", Resource: "stack"}
	CloudControlRID = ResourceID{Service: "cc", Resource: "resource"}
	DemoRID         = ResourceID{Service: "demo", Resource: "item"}
)

// Object represents a generic browsable resource with common metadata.
type Object interface {
	GetARN() string
	GetID() string
	GetName() string
	GetRegion() string
	GetTags() map[string]string
	GetCreatedAt() *time.Time
	GetRaw() any
}

// PageRequest asks a pager for a single page of objects.
type PageRequest struct {
	// PageSize is the maximum number of objects to return.
	PageSize int
	// SortField is the column id to order by; empty means backend order.
	// Backends without server-side ordering ignore it.
	SortField string
	// SortDescending flips the sort direction.
	SortDescending bool
	// PageToken is the backend cursor from a previous page, opaque to
	// callers. Empty requests the first page.
	PageToken string
	// Path scopes the listing for hierarchical backends, e.g.
	// "bucket/prefix/" for S3 objects or a type name for Cloud Control.
	Path string
}

// PageResult is one page of objects plus the forward cursor.
type PageResult struct {
	Objects []Object
	// NextPageToken is empty when the backend is exhausted.
	NextPageToken string
}

// Pager retrieves resources one page at a time using backend cursors.
type Pager interface {
	ListPage(ctx context.Context, region string, req PageRequest) (PageResult, error)
	Init(Factory, *ResourceID)
	ResourceID() *ResourceID
}

// Getter retrieves a single resource by path.
type Getter interface {
	Get(ctx context.Context, path string) (Object, error)
}

// Factory provides client configuration and management.
type Factory interface {
	Client() aws.Connection
	Profile() string
	Region() string
	SetProfile(profile string) error
	SetRegion(region string) error
}
