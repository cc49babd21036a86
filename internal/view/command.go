// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pagr/pagr/internal/config"
	"github.com/pagr/pagr/internal/dao"
)

// Command interprets prompt commands: resource aliases, profile and
// region switches, and application controls.
type Command struct {
	app     *App
	aliases *config.Aliases
}

// NewCommand returns a new command interpreter.
func NewCommand(app *App) *Command {
	return &Command{
		app:     app,
		aliases: config.NewAliases(),
	}
}

// Init loads user aliases over the defaults.
func (c *Command) Init() error {
	return c.aliases.Load()
}

// Run executes the given command.
func (c *Command) Run(cmd string) error {
	cmd = strings.TrimSpace(strings.TrimPrefix(cmd, ":"))
	if cmd == "" {
		cmd = c.app.Config().Pagr.DefaultResource
	}

	fields := strings.Fields(cmd)
	verb, args := fields[0], fields[1:]

	switch verb {
	case "q", "quit":
		c.app.Stop()
		return nil

	case "help", "?":
		c.app.showHelp()
		return nil

	case "aliases", "alias":
		c.app.Flash().Infof("%d aliases defined", len(c.aliases.All()))
		return nil

	case "profile", "ctx":
		if len(args) != 1 {
			return fmt.Errorf("usage: profile <name>")
		}
		if err := c.app.SwitchProfile(args[0]); err != nil {
			return err
		}
		c.app.Flash().Infof("Switched to profile %s", args[0])
		return c.restartCurrent()

	case "region", "ns":
		if len(args) != 1 {
			return fmt.Errorf("usage: region <name>")
		}
		if err := c.app.SwitchRegion(args[0]); err != nil {
			return err
		}
		c.app.Flash().Infof("Switched to region %s", args[0])
		return c.restartCurrent()

	case "ps", "pagesize":
		if len(args) != 1 {
			return fmt.Errorf("usage: ps <size>")
		}
		size, err := strconv.Atoi(args[0])
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid page size: %s", args[0])
		}
		return c.setPageSize(size)
	}

	// Anything else resolves through aliases to a resource id, with an
	// optional listing path, e.g. "s3 mybucket/prefix/".
	rid := &dao.ResourceID{}
	if err := rid.Parse(c.aliases.Get(verb)); err != nil {
		return fmt.Errorf("unknown command: %s", verb)
	}

	b := NewBrowser(rid)
	b.SetApp(c.app)
	b.SetFactory(c.app.GetFactory())
	if len(args) > 0 {
		b.SetPath(args[0])
	}
	c.app.pushView(b)

	return nil
}

func (c *Command) setPageSize(size int) error {
	browser, ok := c.app.Content.Top().(*Browser)
	if !ok {
		return fmt.Errorf("no browser active")
	}
	pm := browser.Model()
	if pm == nil {
		return fmt.Errorf("no page model active")
	}

	go func() {
		if err := pm.SetPageSize(context.Background(), size); err != nil {
			c.app.Flash().Err(err)
		}
	}()
	return nil
}

func (c *Command) restartCurrent() error {
	if top := c.app.Content.Top(); top != nil {
		top.Start()
	}
	return nil
}
