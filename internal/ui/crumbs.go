// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// Crumbs shows the navigation trail: resource type, then the path
// segments of hierarchical backends.
type Crumbs struct {
	*tview.TextView
}

// NewCrumbs returns a new breadcrumb view.
func NewCrumbs() *Crumbs {
	c := &Crumbs{
		TextView: tview.NewTextView(),
	}
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTextAlign(tview.AlignLeft)
	c.SetBorderPadding(0, 0, 1, 1)
	c.SetDynamicColors(true)

	return c
}

// Refresh updates the view with new crumbs.
func (c *Crumbs) Refresh(crumbs []string) {
	c.Clear()
	last := len(crumbs) - 1

	for i, crumb := range crumbs {
		if i == last {
			_, _ = fmt.Fprintf(c, "[yellow:black:b] <%s> [-:-:-] ",
				strings.ToLower(crumb))
		} else {
			_, _ = fmt.Fprintf(c, "[gray::-] <%s> [-:-:-] ",
				strings.ToLower(crumb))
		}
	}
}
