// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package view

import (
	"context"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagr/pagr/internal/config"
	"github.com/pagr/pagr/internal/dao"
)

func testApp(readOnly bool) *App {
	cfg := config.NewConfig(nil)
	cfg.Pagr.ReadOnly = readOnly
	return NewApp(cfg, "test")
}

func TestBrowserBindsPruneWhenWritable(t *testing.T) {
	b := NewBrowser(&dao.DemoRID)
	b.SetApp(testApp(false))
	require.NoError(t, b.Init(context.Background()))

	action, ok := b.Actions().Get(tcell.KeyCtrlD)
	require.True(t, ok)
	assert.Equal(t, "Prune Row", action.Description)
}

func TestBrowserReadOnlySkipsPrune(t *testing.T) {
	b := NewBrowser(&dao.DemoRID)
	b.SetApp(testApp(true))
	require.NoError(t, b.Init(context.Background()))

	_, ok := b.Actions().Get(tcell.KeyCtrlD)
	assert.False(t, ok)

	// Navigation stays available.
	_, ok = b.Actions().Get(tcell.KeyPgDn)
	assert.True(t, ok)
}
