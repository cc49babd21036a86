package config

import (
	"os"
	"sync"

	"github.com/pagr/pagr/internal/config/data"
)

// Aliases maps short commands to resource ids.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex      `yaml:"-"`
}

// DefaultAliases are the built-in aliases for the supported resources.
var DefaultAliases = map[string]string{
	"ec2":      "ec2/instance",
	"i":        "ec2/instance",
	"s3":       "s3/object",
	"obj":      "s3/object",
	"iam":      "iam/user",
	"user":     "iam/user",
	"eks":      "eks/cluster",
	"cluster":  "eks/cluster",
	"cfn":      "cfn/stack",
	"stack":    "cfn/stack",
	"cc":       "cc/resource",
	"resource": "cc/resource",
	"demo":     "demo/item",
}

// NewAliases creates an Aliases with the defaults loaded.
func NewAliases() *Aliases {
	a := &Aliases{
		Alias: make(map[string]string, len(DefaultAliases)),
	}
	for k, v := range DefaultAliases {
		a.Alias[k] = v
	}
	return a
}

// Load loads aliases from the default config file, merging over the
// defaults.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom loads aliases from a specific file path.
func (a *Aliases) LoadFrom(path string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	loaded := &Aliases{
		Alias: make(map[string]string),
	}
	if err := data.LoadYAML(path, loaded); err != nil {
		return err
	}

	for k, v := range loaded.Alias {
		a.Alias[k] = v
	}

	return nil
}

// Save saves aliases to the default config file.
func (a *Aliases) Save() error {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return data.SaveYAML(AppAliasesFile, a)
}

// Get returns the resource for an alias, or the original if not found.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if resource, ok := a.Alias[alias]; ok {
		return resource
	}
	return alias
}

// Set sets an alias.
func (a *Aliases) Set(alias, resource string) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.Alias[alias] = resource
}

// All returns a copy of all aliases.
func (a *Aliases) All() map[string]string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	result := make(map[string]string, len(a.Alias))
	for k, v := range a.Alias {
		result[k] = v
	}
	return result
}
