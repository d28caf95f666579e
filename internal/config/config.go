// Package config holds the run configuration shared by the CLI and the YAML
// config file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"ggcat2bcalm/core/fasta"
	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/output"
)

// Config is the resolved set of run options. In a file, zero values mean
// "not set".
type Config struct {
	K                   int    `yaml:"k"`
	Input               string `yaml:"input"`
	Output              string `yaml:"output"`
	Format              string `yaml:"format"`
	Pairing             string `yaml:"pairing"`
	AllowDuplicateKmers bool   `yaml:"allow_duplicate_kmers"`
	MaxLineBytes        int    `yaml:"max_line_bytes"`
	BufferBytes         int    `yaml:"buffer_bytes"`
	MetricsFile         string `yaml:"metrics_file"`
	Checksum            bool   `yaml:"checksum"`
	WithSeq             bool   `yaml:"with_seq"`
	Quiet               bool   `yaml:"quiet"`
	Debug               bool   `yaml:"debug"`
}

// Default returns the built-in defaults. K and Input have none.
func Default() Config {
	return Config{
		Output:       "-",
		Format:       output.FormatBCALM,
		Pairing:      graph.AllPairs.String(),
		MaxLineBytes: fasta.DefaultMaxLineBytes,
		BufferBytes:  fasta.DefaultBufferBytes,
	}
}

// Load reads a YAML config file in strict mode (KnownFields) so a misspelled
// key is an error instead of a silently ignored option. Environment variables
// in the file are expanded. An empty file yields the zero Config.
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}
	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}
	return c, nil
}

// Overlay copies every field that is set in src onto c.
func (c *Config) Overlay(src Config) {
	if src.K != 0 {
		c.K = src.K
	}
	if src.Input != "" {
		c.Input = src.Input
	}
	if src.Output != "" {
		c.Output = src.Output
	}
	if src.Format != "" {
		c.Format = src.Format
	}
	if src.Pairing != "" {
		c.Pairing = src.Pairing
	}
	if src.MaxLineBytes != 0 {
		c.MaxLineBytes = src.MaxLineBytes
	}
	if src.BufferBytes != 0 {
		c.BufferBytes = src.BufferBytes
	}
	if src.MetricsFile != "" {
		c.MetricsFile = src.MetricsFile
	}
	c.AllowDuplicateKmers = c.AllowDuplicateKmers || src.AllowDuplicateKmers
	c.Checksum = c.Checksum || src.Checksum
	c.WithSeq = c.WithSeq || src.WithSeq
	c.Quiet = c.Quiet || src.Quiet
	c.Debug = c.Debug || src.Debug
}

// Validate checks option values; it does not touch the filesystem.
func (c Config) Validate() error {
	if c.K < 2 {
		return fmt.Errorf("k must be >= 2 (got %d)", c.K)
	}
	if c.Input == "" {
		return errors.New("an input file is required (-f/--input or positional)")
	}
	if c.Output == "" {
		return errors.New("output must be a path or '-'")
	}
	if !slices.Contains(output.Formats, c.Format) {
		return fmt.Errorf("invalid --format %q (want one of %s)", c.Format, strings.Join(output.Formats, ", "))
	}
	if _, err := graph.ParsePairing(c.Pairing); err != nil {
		return err
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max-line-bytes must be > 0 (got %d)", c.MaxLineBytes)
	}
	if c.BufferBytes <= 0 {
		return fmt.Errorf("buffer-bytes must be > 0 (got %d)", c.BufferBytes)
	}
	if c.Quiet && c.Debug {
		return errors.New("--quiet and --debug are mutually exclusive")
	}
	return nil
}

// PairingMode returns the parsed pairing; call after Validate.
func (c Config) PairingMode() graph.Pairing {
	p, _ := graph.ParsePairing(c.Pairing)
	return p
}

// ReaderOptions maps the buffer knobs onto the FASTA reader.
func (c Config) ReaderOptions() fasta.Options {
	return fasta.Options{BufferBytes: c.BufferBytes, MaxLineBytes: c.MaxLineBytes}
}
