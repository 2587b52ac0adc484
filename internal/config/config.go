// Package config loads monobump settings from file, environment and defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/mouse-blink/monobump/internal/domain"
	m "github.com/mouse-blink/monobump/internal/model"
)

const (
	// AppName is the application name.
	AppName = "monobump"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = ".monobump"
	// EnvPrefix prefixes environment overrides, e.g. MONOBUMP_TAG_PREFIX.
	EnvPrefix = "MONOBUMP"
)

// Config is the effective configuration.
type Config struct {
	ComponentsRoot  string        `mapstructure:"components_root" yaml:"components_root"`
	VersionFile     string        `mapstructure:"version_file" yaml:"version_file"`
	Manifest        string        `mapstructure:"manifest" yaml:"manifest"`
	ManifestEntries string        `mapstructure:"manifest_entries" yaml:"manifest_entries"`
	TagPrefix       string        `mapstructure:"tag_prefix" yaml:"tag_prefix"`
	Rules           RulesConfig   `mapstructure:"rules" yaml:"rules"`
	Release         ReleaseConfig `mapstructure:"release" yaml:"release"`

	// File is the config file that was read, empty when only defaults and
	// environment were used.
	File string `mapstructure:"-" yaml:"-"`
}

// RulesConfig holds the commit classification rules in text form.
type RulesConfig struct {
	BumpTypes       map[string]string `mapstructure:"bump_types" yaml:"bump_types"`
	NoBumpTypes     []string          `mapstructure:"no_bump_types" yaml:"no_bump_types"`
	BreakingMarkers []string          `mapstructure:"breaking_markers" yaml:"breaking_markers"`
}

// ReleaseConfig holds release commit and tag templates. {tag} is replaced
// with the tag name.
type ReleaseConfig struct {
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message"`
	TagMessage    string `mapstructure:"tag_message" yaml:"tag_message"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	rules := m.DefaultRules()

	cfg := Config{
		ComponentsRoot:  "plugins",
		VersionFile:     ".claude-plugin/plugin.json",
		Manifest:        "marketplace.json",
		ManifestEntries: "plugins",
		TagPrefix:       "v",
		Rules: RulesConfig{
			BumpTypes:       make(map[string]string, len(rules.BumpTypes)),
			NoBumpTypes:     make([]string, 0, len(rules.NoBumpTypes)),
			BreakingMarkers: rules.BreakingMarkers,
		},
		Release: ReleaseConfig{
			CommitMessage: domain.DefaultCommitMessage,
			TagMessage:    domain.DefaultTagMessage,
		},
	}

	for t, level := range rules.BumpTypes {
		cfg.Rules.BumpTypes[t] = level.String()
	}

	for t := range rules.NoBumpTypes {
		cfg.Rules.NoBumpTypes = append(cfg.Rules.NoBumpTypes, t)
	}

	sort.Strings(cfg.Rules.NoBumpTypes)

	return cfg
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// SearchDir is where .monobump.{yaml,json,toml} is looked for.
	SearchDir string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source, layered over
// defaults and under MONOBUMP_* environment variables.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	// Rules have no viper defaults; a rules table in the file replaces the
	// built-in one as a whole. Missing rules are filled in after unmarshalling.
	defaults := DefaultConfig()
	v.SetDefault("components_root", defaults.ComponentsRoot)
	v.SetDefault("version_file", defaults.VersionFile)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("manifest_entries", defaults.ManifestEntries)
	v.SetDefault("tag_prefix", defaults.TagPrefix)
	v.SetDefault("release.commit_message", defaults.Release.CommitMessage)
	v.SetDefault("release.tag_message", defaults.Release.TagMessage)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := readConfigFile(v, opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.File = file

	if cfg.Rules.BumpTypes == nil {
		cfg.Rules.BumpTypes = defaults.Rules.BumpTypes
	}

	if cfg.Rules.NoBumpTypes == nil {
		cfg.Rules.NoBumpTypes = defaults.Rules.NoBumpTypes
	}

	if cfg.Rules.BreakingMarkers == nil {
		cfg.Rules.BreakingMarkers = defaults.Rules.BreakingMarkers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return "", fmt.Errorf("config file not found: %s: %w", opts.ConfigFilePath, err)
		}

		v.SetConfigFile(opts.ConfigFilePath)

		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", opts.ConfigFilePath, err)
		}

		return opts.ConfigFilePath, nil
	}

	dir := opts.SearchDir
	if dir == "" {
		dir = "."
	}

	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}

		return "", fmt.Errorf("read config: %w", err)
	}

	return v.ConfigFileUsed(), nil
}

// Validate checks that required settings are present and rules parse.
func (c *Config) Validate() error {
	required := map[string]string{
		"version_file":     c.VersionFile,
		"manifest":         c.Manifest,
		"manifest_entries": c.ManifestEntries,
	}

	keys := make([]string, 0, len(required))
	for key := range required {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if strings.TrimSpace(required[key]) == "" {
			return fmt.Errorf("config: %s must not be empty", key)
		}
	}

	_, err := c.ClassificationRules()

	return err
}

// ClassificationRules converts the rules section for the classifier.
func (c *Config) ClassificationRules() (m.Rules, error) {
	rules := m.Rules{
		BumpTypes:       make(map[string]m.BumpLevel, len(c.Rules.BumpTypes)),
		NoBumpTypes:     make(map[string]struct{}, len(c.Rules.NoBumpTypes)),
		BreakingMarkers: append([]string(nil), c.Rules.BreakingMarkers...),
	}

	for commitType, text := range c.Rules.BumpTypes {
		level, err := m.ParseBumpLevel(text)
		if err != nil {
			return m.Rules{}, fmt.Errorf("config: rules.bump_types.%s: %w", commitType, err)
		}

		rules.BumpTypes[strings.ToLower(commitType)] = level
	}

	for _, commitType := range c.Rules.NoBumpTypes {
		rules.NoBumpTypes[strings.ToLower(commitType)] = struct{}{}
	}

	return rules, nil
}
