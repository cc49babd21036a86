// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/pagr/pagr/internal/model"
)

// StatusIndicator shows the active profile, region, page position, and
// fetch state on a single line.
type StatusIndicator struct {
	*tview.TextView

	profile string
	region  string
}

// NewStatusIndicator returns a new status indicator.
func NewStatusIndicator() *StatusIndicator {
	s := &StatusIndicator{
		TextView: tview.NewTextView(),
	}
	s.SetDynamicColors(true)
	s.SetBackgroundColor(tcell.ColorDefault)
	s.SetTextAlign(tview.AlignLeft)
	s.SetBorderPadding(0, 0, 1, 1)

	return s
}

// SetContext sets the profile and region shown on the left.
func (s *StatusIndicator) SetContext(profile, region string) {
	s.profile, s.region = profile, region
}

// Refresh redraws the indicator from page status.
func (s *StatusIndicator) Refresh(status PageStatus, pageSize, rows, selected int) {
	nav := ""
	if status.HasPrev {
		nav += "‹"
	}
	if status.HasNext {
		nav += "›"
	}
	if nav != "" {
		nav = " " + nav
	}

	line := fmt.Sprintf("[aqua::b]%s[white::-]@[aqua::-]%s[white::-] | page [yellow::b]%d[white::-]%s | %d/%d rows",
		s.profile, s.region, status.Page+1, nav, rows, pageSize)
	if selected > 0 {
		line += fmt.Sprintf(" | [aqua::-]%d marked[white::-]", selected)
	}

	switch status.State {
	case model.StateFetching:
		line += " | [darkcyan::b]fetching…[white::-]"
	case model.StateError:
		msg := "fetch failed"
		if status.Err != nil {
			msg = status.Err.Error()
		}
		line += fmt.Sprintf(" | [red::b]%s[white::-]", msg)
	}

	s.SetText(line)
}
