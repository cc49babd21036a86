package aws

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

// ProfileSettings exposes the AWS profiles discovered from the shared
// credentials and config files.
type ProfileSettings interface {
	CurrentProfileName() (string, error)
	CurrentRegion() (string, error)
	ProfileNames() (map[string]struct{}, error)
	GetProfile(name string) (*Profile, error)
	SetActiveProfile(profile, region string) error
}

// Profile holds the settings of one shared-config profile.
type Profile struct {
	Name          string
	DefaultRegion string
	RoleARN       string
	SourceProfile string
}

// ProfileManager loads and tracks AWS profiles from ~/.aws.
type ProfileManager struct {
	profiles      map[string]*Profile
	activeProfile string
	activeRegion  string
	mx            sync.RWMutex
}

// NewProfileManager discovers profiles from the shared credentials and
// config files.
func NewProfileManager() (*ProfileManager, error) {
	m := &ProfileManager{
		profiles: make(map[string]*Profile),
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	if len(m.profiles) == 0 {
		return nil, ErrNoCredentials
	}

	m.activeProfile = defaultProfileName()
	if _, ok := m.profiles[m.activeProfile]; !ok {
		names := m.sortedNames()
		m.activeProfile = names[0]
	}
	m.activeRegion = m.profiles[m.activeProfile].DefaultRegion

	return m, nil
}

func (m *ProfileManager) load() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home dir: %w", err)
	}

	credPath := filepath.Join(home, ".aws", "credentials")
	if _, err := os.Stat(credPath); err == nil {
		cred, err := ini.Load(credPath)
		if err != nil {
			return fmt.Errorf("failed to load credentials file: %w", err)
		}
		for _, section := range cred.Sections() {
			if name := section.Name(); name != ini.DefaultSection {
				m.ensureProfile(name)
			}
		}
	}

	cfgPath := filepath.Join(home, ".aws", "config")
	if _, err := os.Stat(cfgPath); err == nil {
		cfg, err := ini.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		for _, section := range cfg.Sections() {
			name := section.Name()
			switch {
			case name == "default":
			case strings.HasPrefix(name, "profile "):
				name = strings.TrimPrefix(name, "profile ")
			case name == ini.DefaultSection:
				continue
			}
			p := m.ensureProfile(name)
			if region := section.Key("region").String(); region != "" {
				p.DefaultRegion = region
			}
			p.RoleARN = section.Key("role_arn").String()
			p.SourceProfile = section.Key("source_profile").String()
		}
	}

	for _, p := range m.profiles {
		if p.DefaultRegion == "" {
			p.DefaultRegion = DefaultRegion
		}
	}
	return nil
}

func (m *ProfileManager) ensureProfile(name string) *Profile {
	if p, ok := m.profiles[name]; ok {
		return p
	}
	p := &Profile{Name: name}
	m.profiles[name] = p
	return p
}

func (m *ProfileManager) sortedNames() []string {
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentProfileName returns the active profile name.
func (m *ProfileManager) CurrentProfileName() (string, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	if m.activeProfile == "" {
		return "", ErrInvalidProfile
	}
	return m.activeProfile, nil
}

// CurrentRegion returns the active region.
func (m *ProfileManager) CurrentRegion() (string, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	if m.activeRegion == "" {
		return "", ErrInvalidRegion
	}
	return m.activeRegion, nil
}

// ProfileNames returns the discovered profile names as a set.
func (m *ProfileManager) ProfileNames() (map[string]struct{}, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	names := make(map[string]struct{}, len(m.profiles))
	for name := range m.profiles {
		names[name] = struct{}{}
	}
	return names, nil
}

// GetProfile returns the named profile.
func (m *ProfileManager) GetProfile(name string) (*Profile, error) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	p, ok := m.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, name)
	}
	return p, nil
}

// SetActiveProfile switches the active profile, and region when given.
func (m *ProfileManager) SetActiveProfile(profile, region string) error {
	m.mx.Lock()
	defer m.mx.Unlock()

	p, ok := m.profiles[profile]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, profile)
	}
	m.activeProfile = profile
	if region == "" {
		region = p.DefaultRegion
	}
	m.activeRegion = region
	return nil
}

// defaultProfileName honors AWS_PROFILE before falling back to "default".
func defaultProfileName() string {
	if profile := os.Getenv("AWS_PROFILE"); profile != "" {
		return profile
	}
	return "default"
}
