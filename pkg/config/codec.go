package config

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ToYAML encodes the persisted settings.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// ToTOML encodes the persisted settings as TOML.
func (c *Config) ToTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML decodes a YAML document. Fields that are absent stay at their
// zero value.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := cfg.DecodeYAML(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeYAML decodes a YAML document onto c. Keys absent from the document
// keep their current value; lists present in it replace c's lists.
func (c *Config) DecodeYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// FromTOML decodes a TOML document. Keys gobasic does not know are an
// error, since TOML files are usually hand-written.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := cfg.DecodeTOML(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeTOML is DecodeYAML for TOML documents.
func (c *Config) DecodeTOML(data []byte) error {
	meta, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse toml: unknown key %q", undecoded[0].String())
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Extensions = slices.Clone(c.Extensions)
	out.Ignore = slices.Clone(c.Ignore)
	return &out
}
