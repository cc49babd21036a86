package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageKeyStore(t *testing.T) {
	s := NewPageKeyStore()

	_, ok := s.Get(1)
	assert.False(t, ok)
	assert.Zero(t, s.Len())

	s.Set(1, "t1")
	s.Set(2, "t2")

	token, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "t1", token)
	assert.Equal(t, 2, s.Len())

	s.Set(1, "t1-bis")
	token, ok = s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "t1-bis", token)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	_, ok = s.Get(1)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}
