package config

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/pagr/pagr/internal/config/data"
)

// Default values.
const (
	DefaultAPITimeout = 30 * time.Second
	DefaultResource   = "demo/item"
	DefaultPageSize   = 25
	DefaultLogLevel   = "info"
)

// DefaultPageSizeOptions is the page size cycle offered in the UI.
var DefaultPageSizeOptions = []int{10, 25, 50, 100}

// Pagr represents the pagr global configuration.
type Pagr struct {
	PageSize        int         `yaml:"pageSize"`
	PageSizeOptions []int       `yaml:"pageSizeOptions"`
	CopyOnFetch     bool        `yaml:"copyOnFetch"`
	APITimeout      string      `yaml:"apiTimeout"`
	ReadOnly        bool        `yaml:"readOnly"`
	DefaultResource string      `yaml:"defaultResource"`
	DefaultProfile  string      `yaml:"defaultProfile"`
	DefaultRegion   string      `yaml:"defaultRegion"`
	Logger          data.Logger `yaml:"logger"`

	activeProfile string
	activeRegion  string
	mx            sync.RWMutex
}

// NewPagr creates a Pagr with default settings.
func NewPagr() *Pagr {
	return &Pagr{
		PageSize:        DefaultPageSize,
		PageSizeOptions: slices.Clone(DefaultPageSizeOptions),
		CopyOnFetch:     true,
		APITimeout:      DefaultAPITimeout.String(),
		DefaultResource: DefaultResource,
		Logger:          data.Logger{Level: DefaultLogLevel},
	}
}

// Validate ensures the configuration has sane settings.
func (p *Pagr) Validate() {
	p.mx.Lock()
	defer p.mx.Unlock()

	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if len(p.PageSizeOptions) == 0 {
		p.PageSizeOptions = slices.Clone(DefaultPageSizeOptions)
	}
	if !slices.Contains(p.PageSizeOptions, p.PageSize) {
		p.PageSizeOptions = append(p.PageSizeOptions, p.PageSize)
		slices.Sort(p.PageSizeOptions)
	}
	if p.APITimeout == "" {
		p.APITimeout = DefaultAPITimeout.String()
	}
	if p.DefaultResource == "" {
		p.DefaultResource = DefaultResource
	}
	if p.Logger.Level == "" {
		p.Logger.Level = DefaultLogLevel
	}
}

// ActiveProfile returns the currently active AWS profile.
func (p *Pagr) ActiveProfile() string {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.activeProfile
}

// ActiveRegion returns the currently active AWS region.
func (p *Pagr) ActiveRegion() string {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.activeRegion
}

// ActivateProfile records the active profile/region pair.
func (p *Pagr) ActivateProfile(profile, region string) error {
	if profile == "" {
		return fmt.Errorf("profile cannot be empty")
	}
	if region == "" {
		return fmt.Errorf("region cannot be empty")
	}

	p.mx.Lock()
	defer p.mx.Unlock()
	p.activeProfile, p.activeRegion = profile, region

	return nil
}

// Override applies CLI flag overrides to the configuration.
func (p *Pagr) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	if flags.PageSize != nil && *flags.PageSize > 0 {
		p.PageSize = *flags.PageSize
		if !slices.Contains(p.PageSizeOptions, p.PageSize) {
			p.PageSizeOptions = append(p.PageSizeOptions, p.PageSize)
			slices.Sort(p.PageSizeOptions)
		}
	}
	if flags.ReadOnly != nil {
		p.ReadOnly = *flags.ReadOnly
	}
	if flags.Resource != nil && *flags.Resource != "" {
		p.DefaultResource = *flags.Resource
	}
	if flags.Profile != nil && *flags.Profile != "" {
		p.DefaultProfile = *flags.Profile
	}
	if flags.Region != nil && *flags.Region != "" {
		p.DefaultRegion = *flags.Region
	}
	if flags.LogLevel != nil && *flags.LogLevel != "" {
		p.Logger.Level = *flags.LogLevel
	}
	if flags.LogFile != nil && *flags.LogFile != "" {
		p.Logger.File = *flags.LogFile
	}
}

// GetAPITimeout returns the parsed API timeout duration.
func (p *Pagr) GetAPITimeout() (time.Duration, error) {
	p.mx.RLock()
	timeoutStr := p.APITimeout
	p.mx.RUnlock()

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return 0, fmt.Errorf("invalid API timeout %q: %w", timeoutStr, err)
	}

	return timeout, nil
}
