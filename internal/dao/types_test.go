package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceIDParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ResourceID
		wantErr bool
	}{
		{name: "simple", in: "ec2/instance", want: ResourceID{Service: "ec2", Resource: "instance"}},
		{name: "trims whitespace", in: "  s3/object ", want: ResourceID{Service: "s3", Resource: "object"}},
		{name: "missing separator", in: "ec2", wantErr: true},
		{name: "empty service", in: "/instance", wantErr: true},
		{name: "empty resource", in: "ec2/", wantErr: true},
		{name: "empty string", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rid ResourceID
			err := rid.Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rid)
		})
	}
}

func TestResourceIDString(t *testing.T) {
	assert.Equal(t, "eks/cluster", EKSClusterRID.String())
}

func TestPagerFor(t *testing.T) {
	f := NewOfflineFactory("test", "us-east-1")

	p, err := PagerFor(f, &DemoRID)
	require.NoError(t, err)
	assert.Equal(t, &DemoRID, p.ResourceID())

	// Every consumer gets its own instance.
	p2, err := PagerFor(f, &DemoRID)
	require.NoError(t, err)
	assert.NotSame(t, p, p2)

	_, err = PagerFor(f, &ResourceID{Service: "nope", Resource: "nada"})
	assert.Error(t, err)
}

func TestBaseObjectClone(t *testing.T) {
	src := &BaseObject{
		ID:   "i-1",
		Name: "one",
		Tags: map[string]string{"env": "prod"},
	}

	clone := src.Clone()
	require.Equal(t, src, clone)

	clone.Tags["env"] = "dev"
	assert.Equal(t, "prod", src.Tags["env"])
}

func TestCopyObject(t *testing.T) {
	src := &BaseObject{ID: "i-1"}

	copied := CopyObject(src)
	assert.Equal(t, src, copied)
	assert.NotSame(t, src, copied)

	// Non-objects pass through untouched.
	assert.Equal(t, "plain", CopyObject("plain"))
}
