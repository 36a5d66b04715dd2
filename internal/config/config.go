// Package config loads deep link registries from YAML files.
//
// A registry names each template and gives it in template notation:
//
//	log:
//	  level: debug
//	  format: console
//	templates:
//	  - name: product
//	    template: "/product/{id:int}?{ref?}"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/fasthttp/deeplink"
	"github.com/fasthttp/deeplink/internal/logging"
)

// Error is a constant error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrFileNotFound    Error = "registry file not found"
	ErrEmptyFile       Error = "registry file is empty"
	ErrInvalidYAML     Error = "invalid YAML syntax"
	ErrInvalidTemplate Error = "invalid template entry"
	ErrDuplicateName   Error = "duplicate template name"
	ErrInvalidLog      Error = "invalid log settings"
)

// Config is a parsed registry file.
type Config struct {
	Log       Log     `yaml:"log"`
	Templates []Entry `yaml:"templates"`
}

// Log holds the logging settings of a registry file.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Logging returns the logging configuration writing to out.
func (l Log) Logging(out io.Writer) (logging.Config, error) {
	level, err := logging.ParseLevel(l.Level)
	if err != nil {
		return logging.Config{}, errtrace.Wrap(err)
	}

	format, err := logging.ParseFormat(l.Format)
	if err != nil {
		return logging.Config{}, errtrace.Wrap(err)
	}

	return logging.Config{Level: level, Format: format, Output: out}, nil
}

// Entry is one named template of a registry.
type Entry struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`

	parsed deeplink.Template
}

// Parsed returns the template the entry's notation describes. It is only
// set on entries returned by Load or Parse.
func (e Entry) Parsed() deeplink.Template {
	return e.parsed
}

// Load reads and parses the registry file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errtrace.Wrap(fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}

		return nil, errtrace.Wrap(fmt.Errorf("read registry file: %w", err))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%s: %w", path, err))
	}

	return cfg, nil
}

// Parse parses a registry from YAML. Every problem found is reported, joined
// into one error.
func Parse(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errtrace.Wrap(ErrEmptyFile)
	}

	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	if err := cfg.validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if _, err := c.Log.Logging(nil); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLog, err))
	}

	seen := make(map[string]int, len(c.Templates))

	for i := range c.Templates {
		e := &c.Templates[i]

		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d has no name", ErrInvalidTemplate, i))
			continue
		}

		if j, dup := seen[e.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q at entries %d and %d", ErrDuplicateName, e.Name, j, i))
			continue
		}
		seen[e.Name] = i

		t, err := deeplink.ParseTemplate(e.Template)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrInvalidTemplate, e.Name, err))
			continue
		}

		e.parsed = t
	}

	return errors.Join(errs...)
}
