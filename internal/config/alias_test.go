package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasesGet(t *testing.T) {
	a := NewAliases()

	assert.Equal(t, "ec2/instance", a.Get("ec2"))
	assert.Equal(t, "ec2/instance", a.Get("i"))
	assert.Equal(t, "demo/item", a.Get("demo"))

	// Unknown aliases pass through untouched.
	assert.Equal(t, "ec2/volume", a.Get("ec2/volume"))
}

func TestAliasesSet(t *testing.T) {
	a := NewAliases()
	a.Set("vol", "ec2/volume")

	assert.Equal(t, "ec2/volume", a.Get("vol"))
	assert.Equal(t, "ec2/volume", a.All()["vol"])
}

func TestAliasesAllIsACopy(t *testing.T) {
	a := NewAliases()
	all := a.All()
	all["ec2"] = "mutated"

	assert.Equal(t, "ec2/instance", a.Get("ec2"))
}

func TestAliasesLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	raw := []byte("aliases:\n  sg: ec2/security-group\n  ec2: custom/override\n")
	require.NoError(t, os.WriteFile(path, raw, 0600))

	a := NewAliases()
	require.NoError(t, a.LoadFrom(path))

	// File entries merge over the defaults.
	assert.Equal(t, "ec2/security-group", a.Get("sg"))
	assert.Equal(t, "custom/override", a.Get("ec2"))
	assert.Equal(t, "s3/object", a.Get("s3"))
}

func TestAliasesLoadFromMissingFile(t *testing.T) {
	a := NewAliases()
	require.NoError(t, a.LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, "ec2/instance", a.Get("ec2"))
}
