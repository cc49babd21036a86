package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/pagr/pagr/internal/aws"
	"github.com/pagr/pagr/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Pagr     *Pagr `yaml:"pagr"`
	conn     aws.Connection
	settings aws.ProfileSettings
	mx       sync.RWMutex
}

// NewConfig creates a new Config with the given profile settings.
func NewConfig(settings aws.ProfileSettings) *Config {
	return &Config{
		Pagr:     NewPagr(),
		settings: settings,
	}
}

// Load loads the configuration from the given path. A missing file
// keeps the current config unless force is set.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := data.LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if c.Pagr == nil {
		c.Pagr = NewPagr()
	}
	c.Pagr.Validate()

	return nil
}

// Save saves the configuration. If force is false, only saves when the
// file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	path := AppConfigFile
	if path == "" {
		return fmt.Errorf("no config file path configured")
	}

	_, err := os.Stat(path)
	if !force && err != nil {
		return nil
	}

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine applies CLI flags and AWS settings to determine the final
// configuration. Precedence per setting: CLI flag, config default,
// AWS profile default.
func (c *Config) Refine(flags *data.Flags, settings aws.ProfileSettings) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Pagr == nil {
		return fmt.Errorf("config.Pagr is nil")
	}
	c.settings = settings

	var profile string
	switch {
	case flags != nil && flags.Profile != nil && *flags.Profile != "":
		profile = *flags.Profile
	case c.Pagr.DefaultProfile != "":
		profile = c.Pagr.DefaultProfile
	default:
		awsDefault, err := settings.CurrentProfileName()
		if err != nil {
			return fmt.Errorf("failed to get AWS default profile: %w", err)
		}
		profile = awsDefault
	}

	if _, err := settings.GetProfile(profile); err != nil {
		return fmt.Errorf("profile %q not found: %w", profile, err)
	}

	var region string
	switch {
	case flags != nil && flags.Region != nil && *flags.Region != "":
		region = *flags.Region
	case c.Pagr.DefaultRegion != "":
		region = c.Pagr.DefaultRegion
	default:
		profileData, err := settings.GetProfile(profile)
		if err != nil {
			return fmt.Errorf("failed to get profile data: %w", err)
		}
		region = profileData.DefaultRegion
	}
	if region == "" {
		region = aws.DefaultRegion
	}

	if err := c.Pagr.ActivateProfile(profile, region); err != nil {
		return fmt.Errorf("failed to activate profile %q with region %q: %w", profile, region, err)
	}

	c.Pagr.Override(flags)
	c.Pagr.Validate()

	return nil
}

// Connection returns the AWS connection.
func (c *Config) Connection() aws.Connection {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.conn
}

// SetConnection sets the AWS connection.
func (c *Config) SetConnection(conn aws.Connection) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.conn = conn
}

// Settings returns the AWS profile settings.
func (c *Config) Settings() aws.ProfileSettings {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.settings
}
