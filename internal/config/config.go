// Package config loads the tokcmp configuration from defaults, an optional
// YAML file, TOKCMP_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "TOKCMP"

// Annotator kinds
const (
	AnnotatorSpaCy   = "spacy"
	AnnotatorLexicon = "lexicon"
)

type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Output    OutputConfig    `mapstructure:"output"`
	Match     MatchConfig     `mapstructure:"match"`
	Annotator AnnotatorConfig `mapstructure:"annotator"`
	Log       LogConfig       `mapstructure:"log"`
}

type InputConfig struct {
	Text1 string `mapstructure:"text1"`
	Text2 string `mapstructure:"text2"`
}

type OutputConfig struct {
	Path string `mapstructure:"path"`
}

type MatchConfig struct {
	MinLength int `mapstructure:"min_length"`
}

// AnnotatorConfig selects and configures the annotator.
type AnnotatorConfig struct {
	Kind string `mapstructure:"kind"`
	// Python interpreter and model for the spacy annotator
	Python  string        `mapstructure:"python"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
	// Lexicon file for the lexicon annotator, empty for the built-in one
	Lexicon  string `mapstructure:"lexicon"`
	Parallel bool   `mapstructure:"parallel"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New creates a viper instance with all defaults set and environment lookup
// enabled. Flags can be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input.text1", "text1.txt")
	v.SetDefault("input.text2", "text2.txt")
	v.SetDefault("output.path", "out.txt")

	v.SetDefault("match.min_length", 1)

	v.SetDefault("annotator.kind", AnnotatorSpaCy)
	v.SetDefault("annotator.python", "python3")
	v.SetDefault("annotator.model", "en_core_web_sm")
	v.SetDefault("annotator.timeout", "2m")
	v.SetDefault("annotator.lexicon", "")
	v.SetDefault("annotator.parallel", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	return v
}

// Load reads file if given, otherwise an optional tokcmp.yaml from the
// working directory, and decodes the configuration.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("tokcmp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	var errs []error
	switch cfg.Annotator.Kind {
	case AnnotatorSpaCy, AnnotatorLexicon:
	default:
		errs = append(errs, fmt.Errorf("unknown annotator kind '%s'", cfg.Annotator.Kind))
	}
	if cfg.Match.MinLength < 1 {
		errs = append(errs, fmt.Errorf("match.min_length must be at least 1, have %d", cfg.Match.MinLength))
	}
	if cfg.Annotator.Timeout < 0 {
		errs = append(errs, fmt.Errorf("negative annotator.timeout %s", cfg.Annotator.Timeout))
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log.format '%s'", cfg.Log.Format))
	}
	if cfg.Output.Path == "" {
		errs = append(errs, errors.New("empty output.path"))
	}
	return errors.Join(errs...)
}
