// Package rules applies the configurable credit rules to extracted rows.
package rules

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the rules configuration consumed by the engine. Keys follow the
// rules.json layout; JSON files are accepted since JSON is valid YAML.
type Config struct {
	// CategoryBuckets is checked in order; the first Match contained in a
	// row's category decides its bucket.
	CategoryBuckets []Bucket    `yaml:"categoryBuckets"`
	PE              PERule      `yaml:"pe"`
	Service         ServiceRule `yaml:"service"`

	RequiredMin        float64 `yaml:"requiredMin"`
	ElectiveMin        float64 `yaml:"electiveMin"`
	GeneralMin         float64 `yaml:"generalMin"`
	GraduationTotalMin float64 `yaml:"graduationTotalMin"`

	Reassignment ReassignConfig `yaml:"reassignment"`
}

// Bucket maps a category substring to a bucket id.
type Bucket struct {
	Match  string `yaml:"match"`
	Bucket string `yaml:"bucket"`
}

// PERule counts physical-education credits by keyword.
type PERule struct {
	Keywords        []string `yaml:"keywords"`
	RequiredCredits float64  `yaml:"requiredCredits"`
}

// ServiceRule counts service-learning rows by keyword.
type ServiceRule struct {
	Keywords      []string `yaml:"keywords"`
	RequiredTimes int      `yaml:"requiredTimes"`
}

// Tie-break values for ReassignConfig.TieBreak.
const (
	TieBreakA = "a"
	TieBreakB = "b"
)

// ReassignConfig configures the sub-domain credit reclassification.
type ReassignConfig struct {
	Enabled bool `yaml:"enabled"`
	// Category is the top-level category whose sub-domains compete.
	Category   string `yaml:"category"`
	SubdomainA string `yaml:"subdomainA"`
	SubdomainB string `yaml:"subdomainB"`
	// Threshold is the credit total that triggers reclassification.
	Threshold float64 `yaml:"threshold"`
	// Overflow is the domain label credits beyond the threshold move to.
	Overflow string `yaml:"overflow"`
	// PositiveOnly restricts moves to rows with positive earned credits.
	PositiveOnly bool `yaml:"positiveOnly"`
	// TieBreak picks the kept sub-domain when both totals are equal: "a", "b",
	// or one of the two labels. Defaults to "a".
	TieBreak string `yaml:"tieBreak"`
}

// DefaultPath is the rules file used when none is configured.
const DefaultPath = "configs/rules.yaml"

// Load reads a rules file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules %s: %w", path, err)
	}
	return cfg, nil
}

// LoadIfExists reads a rules file like Load but returns a nil config and no
// error when the file does not exist.
func LoadIfExists(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

// Decode reads a rules document from r. An empty document yields an empty config.
func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the bucket table. Reassignment settings are checked when
// the pass runs so a bad value is reported in the result instead.
func (c *Config) Validate() error {
	for i, b := range c.CategoryBuckets {
		if b.Match == "" || b.Bucket == "" {
			return fmt.Errorf("categoryBuckets[%d]: match and bucket are required", i)
		}
	}
	if c.PE.RequiredCredits < 0 || c.Service.RequiredTimes < 0 {
		return errors.New("requirements must not be negative")
	}
	return nil
}

// validate checks that the reassignment settings can run.
func (r ReassignConfig) validate() error {
	switch {
	case r.Category == "":
		return errors.New("reassignment category is required")
	case r.SubdomainA == "" || r.SubdomainB == "":
		return errors.New("reassignment needs two sub-domains")
	case r.SubdomainA == r.SubdomainB:
		return errors.New("reassignment sub-domains must differ")
	case r.Overflow == "":
		return errors.New("reassignment overflow domain is required")
	case r.Threshold <= 0:
		return fmt.Errorf("reassignment threshold must be positive, got %v", r.Threshold)
	}
	if _, err := r.tieBreakLabel(); err != nil {
		return err
	}
	return nil
}

// tieBreakLabel resolves TieBreak to a sub-domain label.
func (r ReassignConfig) tieBreakLabel() (string, error) {
	switch r.TieBreak {
	case "", TieBreakA, r.SubdomainA:
		return r.SubdomainA, nil
	case TieBreakB, r.SubdomainB:
		return r.SubdomainB, nil
	}
	return "", fmt.Errorf("unknown reassignment tie-break %q", r.TieBreak)
}
