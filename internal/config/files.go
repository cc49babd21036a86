package config

import (
	"os"
	"path/filepath"
)

const AppName = "pagr"

var (
	// AppConfigDir is ~/.config/pagr
	AppConfigDir string

	// AppStateDir is ~/.local/state/pagr
	AppStateDir string

	// AppConfigFile is ~/.config/pagr/pagr.yaml
	AppConfigFile string

	// AppAliasesFile is ~/.config/pagr/aliases.yaml
	AppAliasesFile string

	// AppLogFile is ~/.local/state/pagr/pagr.log
	AppLogFile string
)

// InitLocs initializes application directory paths, respecting XDG
// environment variables when set.
func InitLocs() error {
	home := userHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)
	AppConfigFile = filepath.Join(AppConfigDir, "pagr.yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")
	AppLogFile = filepath.Join(AppStateDir, "pagr.log")

	for _, dir := range []string{AppConfigDir, AppStateDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	return nil
}

// InitLogLoc ensures the log directory exists.
func InitLogLoc() error {
	return os.MkdirAll(filepath.Dir(AppLogFile), 0700)
}

func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return home
}
