package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sfe/foundation/core/error"
	"github.com/msto63/sfe/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "SFE_CONFIG"

// Config holds the complete host configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Limits  LimitsConfig  `toml:"limits" yaml:"limits"`

	// Aliases maps a language code to alternative function names, for
	// example aliases.de.pos_e = ["pos_esc"].
	Aliases map[string]map[string][]string `toml:"aliases" yaml:"aliases"`

	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `toml:"log_format" yaml:"log_format" validate:"oneof=json text console"`
}

// LimitsConfig holds the bounds applied by the string functions. A zero
// needle bound turns needle truncation off. The pad and result bounds guard
// allocation and cannot be turned off from a file.
type LimitsConfig struct {
	MaxNeedleLength int `toml:"max_needle_length" yaml:"max_needle_length" validate:"gte=0,lte=100000"`
	MaxPadLength    int `toml:"max_pad_length" yaml:"max_pad_length" validate:"gte=1,lte=1000000"`
	MaxResultLength int `toml:"max_result_length" yaml:"max_result_length" validate:"gte=1,lte=10000000"`
}

// StringLimits converts the configured bounds for the string functions
func (l LimitsConfig) StringLimits() stringx.Limits {
	return stringx.Limits{
		MaxNeedleLength: l.MaxNeedleLength,
		MaxPadLength:    l.MaxPadLength,
		MaxResultLength: l.MaxResultLength,
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	lim := stringx.DefaultLimits()
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Limits: LimitsConfig{
			MaxNeedleLength: lim.MaxNeedleLength,
			MaxPadLength:    lim.MaxPadLength,
			MaxResultLength: lim.MaxResultLength,
		},
		Aliases: map[string]map[string][]string{},
	}
}

// Load loads a TOML or YAML config file, chosen by extension. Keys missing
// from the file keep their Default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeMissingConfig
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, formatOf(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config").
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromEnv loads the file named by SFE_CONFIG, then ./configs/sfe.toml,
// ./sfe.toml and ~/.config/sfe/config.toml. Without any file it returns
// Default.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	home, _ := os.UserHomeDir()
	candidates := []string{
		"./configs/sfe.toml",
		"./sfe.toml",
		filepath.Join(home, ".config", "sfe", "config.toml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Parse decodes config content in the given format ("toml" or "yaml")
func Parse(content []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.Parse")
		}
	case "yaml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.Parse")
		}
	default:
		return nil, mdwerror.Newf("unsupported config format: %s", format).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("config.Parse").
			WithDetail("format", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and alias well-formedness
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return mdwerror.Wrap(err, "invalid configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	for lang, table := range c.Aliases {
		for fn, names := range table {
			for _, name := range names {
				if stringx.IsBlank(name) {
					return mdwerror.New("alias names cannot be blank").
						WithCode(mdwerror.CodeInvalidConfig).
						WithOperation("config.Validate").
						WithDetail("language", lang).
						WithDetail("function", fn)
				}
			}
		}
	}
	return nil
}

// Path returns the file the config was loaded from, or ""
func (c *Config) Path() string {
	return c.path
}

// AliasesFor returns function -> aliases for the given languages merged in
// order. An empty list selects every configured language.
func (c *Config) AliasesFor(langs ...string) map[string][]string {
	if len(langs) == 0 {
		for lang := range c.Aliases {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
	}

	merged := make(map[string][]string)
	for _, lang := range langs {
		for fn, names := range c.Aliases[strings.ToLower(lang)] {
			merged[fn] = append(merged[fn], names...)
		}
	}
	return merged
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.General.LogLevel == "" {
		c.General.LogLevel = def.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = def.General.LogFormat
	}
	c.General.LogLevel = strings.ToLower(c.General.LogLevel)
	c.General.LogFormat = strings.ToLower(c.General.LogFormat)
	aliases := make(map[string]map[string][]string, len(c.Aliases))
	for lang, table := range c.Aliases {
		aliases[strings.ToLower(strings.TrimSpace(lang))] = table
	}
	c.Aliases = aliases
}

var validate = validator.New()

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}
