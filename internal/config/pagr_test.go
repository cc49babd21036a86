package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagr/pagr/internal/config/data"
)

func TestPagrValidate(t *testing.T) {
	p := &Pagr{PageSize: -5}
	p.Validate()

	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, DefaultPageSizeOptions, p.PageSizeOptions)
	assert.Equal(t, DefaultAPITimeout.String(), p.APITimeout)
	assert.Equal(t, DefaultResource, p.DefaultResource)
	assert.Equal(t, DefaultLogLevel, p.Logger.Level)
}

func TestPagrValidateKeepsCustomPageSize(t *testing.T) {
	p := &Pagr{PageSize: 42, PageSizeOptions: []int{10, 25}}
	p.Validate()

	// An off-cycle page size is folded into the options.
	assert.Equal(t, 42, p.PageSize)
	assert.Equal(t, []int{10, 25, 42}, p.PageSizeOptions)
}

func TestPagrOverride(t *testing.T) {
	p := NewPagr()

	size := 50
	resource := "ec2/instance"
	region := "eu-west-1"
	readOnly := true
	p.Override(&data.Flags{
		PageSize: &size,
		Resource: &resource,
		Region:   &region,
		ReadOnly: &readOnly,
	})

	assert.Equal(t, 50, p.PageSize)
	assert.Contains(t, p.PageSizeOptions, 50)
	assert.Equal(t, "ec2/instance", p.DefaultResource)
	assert.Equal(t, "eu-west-1", p.DefaultRegion)
	assert.True(t, p.ReadOnly)

	// Zero-valued flags leave the config alone.
	empty := ""
	zero := 0
	p.Override(&data.Flags{PageSize: &zero, Resource: &empty})
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, "ec2/instance", p.DefaultResource)

	p.Override(nil)
	assert.Equal(t, 50, p.PageSize)
}

func TestPagrActivateProfile(t *testing.T) {
	p := NewPagr()

	require.Error(t, p.ActivateProfile("", "us-east-1"))
	require.Error(t, p.ActivateProfile("dev", ""))

	require.NoError(t, p.ActivateProfile("dev", "us-east-1"))
	assert.Equal(t, "dev", p.ActiveProfile())
	assert.Equal(t, "us-east-1", p.ActiveRegion())
}

func TestPagrGetAPITimeout(t *testing.T) {
	p := NewPagr()

	timeout, err := p.GetAPITimeout()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPITimeout, timeout)

	p.APITimeout = "90s"
	timeout, err = p.GetAPITimeout()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, timeout)

	p.APITimeout = "bogus"
	_, err = p.GetAPITimeout()
	assert.Error(t, err)
}
