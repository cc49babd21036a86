// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/pagr/pagr/internal/config"
	"github.com/pagr/pagr/internal/dao"
	"github.com/pagr/pagr/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash handles transient status messages.
type Flash struct {
	*tview.TextView
	app    *App
	cancel context.CancelFunc
	mx     sync.RWMutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)
	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...interface{}) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		slog.Error("Flash error", "error", err)
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...interface{}) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if f.app != nil {
		f.app.QueueUpdateDraw(func() {
			f.TextView.Clear()
		})
	} else {
		f.TextView.Clear()
	}
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if msg == "" {
		f.Clear()
		return
	}

	updateFn := func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), msg)
	}
	if f.app != nil {
		f.app.QueueUpdateDraw(updateFn)
	} else {
		updateFn()
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(FlashDelay):
		f.Clear()
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN]"
	case FlashErr:
		return "[ERROR]"
	default:
		return "[INFO]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application
	version string
	Main    *tview.Pages
	Content *ui.Pages
	config  *config.Config
	command *Command
	factory dao.Factory
	prompt  *ui.CmdPrompt
	status  *ui.StatusIndicator
	menu    *ui.Menu
	crumbs  *ui.Crumbs
	flash   *Flash
	help    *Help
	running bool
	mx      sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, version string) *App {
	app := &App{
		Application: tview.NewApplication(),
		version:     version,
		config:      cfg,
		Main:        tview.NewPages(),
		Content:     ui.NewPages(),
	}

	app.flash = NewFlash(app)
	app.menu = ui.NewMenu()
	app.crumbs = ui.NewCrumbs()
	app.status = ui.NewStatusIndicator()
	app.prompt = ui.NewCmdPrompt()
	app.help = NewHelp()

	app.Application.SetInputCapture(app.keyboard)

	app.prompt.SetActiveFn(func(active bool) {
		if active {
			app.SetFocus(app.prompt)
		} else {
			app.SetFocus(app.Content)
		}
	})
	app.prompt.SetExecuteFn(func(mode ui.PromptMode, text string) {
		switch mode {
		case ui.ModeCommand:
			if err := app.command.Run(text); err != nil {
				app.showError(err)
			}
		case ui.ModeFilter:
			app.applyFilter(text)
		}
	})
	app.prompt.SetChangeFn(func(mode ui.PromptMode, text string) {
		if mode == ui.ModeFilter {
			app.applyFilter(text)
		}
	})
	app.prompt.SetCancelFn(func() {
		app.applyFilter("")
	})

	return app
}

// Init initializes and builds the application layout.
func (a *App) Init() error {
	a.command = NewCommand(a)
	if err := a.command.Init(); err != nil {
		return fmt.Errorf("failed to initialize command: %w", err)
	}

	layout := a.buildLayout()
	a.Main.AddPage("main", layout, true, true)
	a.SetRoot(a.Main, true)
	a.SetFocus(a.Content)

	return nil
}

// Run starts the application with the configured default resource.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	if err := a.command.Run(a.config.Pagr.DefaultResource); err != nil {
		a.flash.Errf("Failed to run default command: %v", err)
	}

	return a.Application.Run()
}

// Stop stops the application.
func (a *App) Stop() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.running = false
	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.running
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Status returns the status indicator.
func (a *App) Status() *ui.StatusIndicator {
	return a.status
}

// Crumbs returns the breadcrumb view.
func (a *App) Crumbs() *ui.Crumbs {
	return a.crumbs
}

// GetFactory returns the AWS factory.
func (a *App) GetFactory() dao.Factory {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.factory
}

// SetFactory sets the AWS factory.
func (a *App) SetFactory(f dao.Factory) {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.factory = f
}

// SwitchProfile switches to a different AWS profile.
func (a *App) SwitchProfile(profile string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if a.factory == nil {
		return fmt.Errorf("factory not initialized")
	}
	if err := a.factory.SetProfile(profile); err != nil {
		return fmt.Errorf("failed to switch profile: %w", err)
	}
	if client := a.factory.Client(); client != nil {
		if !client.CheckConnectivity() {
			return fmt.Errorf("failed to connect with profile: %s", profile)
		}
	}
	a.status.SetContext(profile, a.factory.Region())

	return nil
}

// SwitchRegion switches to a different AWS region.
func (a *App) SwitchRegion(region string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if a.factory == nil {
		return fmt.Errorf("factory not initialized")
	}
	if err := a.factory.SetRegion(region); err != nil {
		return err
	}
	a.status.SetContext(a.factory.Profile(), region)

	return nil
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

func (a *App) buildLayout() *tview.Flex {
	topBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.status, 1, 0, false).
		AddItem(a.prompt, 1, 0, false).
		AddItem(a.crumbs, 1, 0, false)

	bottomBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.menu, 1, 0, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(topBar, 3, 0, false).
		AddItem(a.Content, 0, 1, true).
		AddItem(bottomBar, 2, 0, false)
}

// keyboard handles global keyboard events. Overlays own the keyboard
// while they are up.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if name, _ := a.Content.GetFrontPage(); name == "help" || strings.HasSuffix(name, "-dialog") {
		return evt
	}
	if a.prompt.IsActive() {
		return a.prompt.HandleKey(evt)
	}

	key := evt.Key()
	if key == tcell.KeyRune {
		switch evt.Rune() {
		case ':':
			a.prompt.Activate(ui.ModeCommand)
			return nil
		case '/':
			a.prompt.Activate(ui.ModeFilter)
			return nil
		case '?':
			a.showHelp()
			return nil
		case 'q':
			a.Stop()
			return nil
		}
	}

	switch key {
	case tcell.KeyCtrlC:
		a.Stop()
		return nil
	case tcell.KeyEsc:
		a.handleEscape()
		return nil
	}

	return evt
}

// pushView initializes a component, pushes it onto the content stack,
// and starts it.
func (a *App) pushView(c ui.Component) {
	if err := c.Init(context.Background()); err != nil {
		a.flash.Err(err)
		return
	}
	a.Content.Push(c)
	a.menu.HydrateMenu(c.Hints())
	a.SetFocus(a.Content)
	c.Start()
}

// showError surfaces an error as a modal dialog over the content area.
func (a *App) showError(err error) {
	d := ui.ErrorDialog(a.Content, err.Error())
	d.SetDoneCallback(func() {
		a.SetFocus(a.Content)
	})
	d.Show()
	a.SetFocus(d)
}

// applyFilter applies a filter to the current view when it supports it.
func (a *App) applyFilter(filter string) {
	if filterable, ok := a.Content.Top().(interface{ SetFilter(string) }); ok {
		filterable.SetFilter(filter)
	}
}

// showHelp displays the help screen in the content area.
func (a *App) showHelp() {
	a.help.SetCloseFn(func() {
		a.Content.RemovePage("help")
		a.SetFocus(a.Content)
	})
	a.Content.AddPage("help", a.help, true, true)
	a.SetFocus(a.help)
}

// handleEscape pops the top view or clears an active filter.
func (a *App) handleEscape() {
	top := a.Content.Top()
	if filterable, ok := top.(interface {
		Filtering() bool
		ClearFilter()
	}); ok && filterable.Filtering() {
		filterable.ClearFilter()
		return
	}

	if a.Content.StackSize() > 1 {
		top.Stop()
		a.Content.Pop()
	}
}
