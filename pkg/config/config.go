// Package config loads the fourcipp configuration file: named
// profiles pointing at the 4C metadata documents driving the codecs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile points at the metadata describing one 4C version.
type Profile struct {
	Description  string `yaml:"description,omitempty"`
	MetadataPath string `yaml:"metadata_path"`
}

// Config is the on-disk configuration: the active profile name plus
// all known profiles.
type Config struct {
	Profile  string             `yaml:"profile"`
	Profiles map[string]Profile `yaml:"profiles"`

	// path is where the config was loaded from; relative metadata
	// paths resolve against its directory.
	path string
}

// Load reads a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{path: path}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return c, nil
}

// Save writes the config back to where it was loaded from.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// Active returns the active profile.
func (c *Config) Active() (Profile, error) {
	p, ok := c.Profiles[c.Profile]
	if !ok {
		return Profile{}, fmt.Errorf("profile %s is not known, known profiles are:%s", c.Profile, c.ListProfiles())
	}
	return p, nil
}

// SwitchProfile changes the active profile and persists the choice.
func (c *Config) SwitchProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile %s is not known, known profiles are:%s", name, c.ListProfiles())
	}
	c.Profile = name
	return c.Save()
}

// ListProfiles returns a listing of all profiles with their
// descriptions.
func (c *Config) ListProfiles() string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	sb := strings.Builder{}
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("\n\t%s: %s", name, c.Profiles[name].Description))
	}
	return sb.String()
}

// Describe returns a description of the active profile.
func (c *Config) Describe() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("fourcipp\n\n  with config profile %s:", c.Profile))
	if p, err := c.Active(); err == nil {
		sb.WriteString("\n   - description: " + p.Description)
		sb.WriteString("\n   - metadata_path: " + p.MetadataPath)
	}
	sb.WriteString("\n")
	return sb.String()
}

// LoadMetadata reads the active profile's metadata document.
func (c *Config) LoadMetadata() (map[string]any, error) {
	p, err := c.Active()
	if err != nil {
		return nil, err
	}
	if p.MetadataPath == "" {
		return nil, fmt.Errorf("profile %s has no metadata path set", c.Profile)
	}

	path := p.MetadataPath
	if !filepath.IsAbs(path) && c.path != "" {
		path = filepath.Join(filepath.Dir(c.path), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	metadata := map[string]any{}
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("reading metadata %s: %w", path, err)
	}
	return metadata, nil
}
