// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML configuration file for the antwalk command. Flags given on
//       the command line override file values.

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/telemetry"
)

// fileConfig is the top-level document of --config.
type fileConfig struct {
	Log         logConfig        `yaml:"log"`
	MetricsAddr string           `yaml:"metrics_addr"`
	Telemetry   telemetry.Config `yaml:"telemetry"`
	Graph       graphConfig      `yaml:"graph"`
	Walk        walkConfig       `yaml:"walk"`
	ACO         acoConfig        `yaml:"aco"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// graphConfig names the input graph: an edge list file or a topology spec.
type graphConfig struct {
	Edges    string `yaml:"edges"`
	Topology string `yaml:"topology"`
	Weight   string `yaml:"weight"`
	Seed     int64  `yaml:"seed"`
}

type walkConfig struct {
	Mode     string  `yaml:"mode"`
	Weighted bool    `yaml:"weighted"`
	NumWalks int     `yaml:"num_walks"`
	Length   int     `yaml:"length"`
	Threads  int     `yaml:"threads"`
	P        float64 `yaml:"p"`
	Q        float64 `yaml:"q"`
	DeadEnd  string  `yaml:"dead_end"`
	// Seed 0 draws seeds from the OS.
	Seed int64 `yaml:"seed"`
}

type acoConfig struct {
	aco.Config `yaml:",inline"`

	ResultMode string `yaml:"result_mode"`
	DeadEnd    string `yaml:"dead_end"`
	Labels     string `yaml:"labels"`
	Seed       int64  `yaml:"seed"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Log:       logConfig{Level: "info", Format: "text"},
		Telemetry: telemetry.DefaultConfig(),
		Graph:     graphConfig{Seed: 1},
		Walk: walkConfig{
			Mode:     "uniform",
			Weighted: true,
			NumWalks: 10,
			Length:   20,
			Threads:  runtime.NumCPU(),
			P:        1,
			Q:        1,
			DeadEnd:  "fail",
		},
		ACO: acoConfig{
			Config:     aco.DefaultConfig(),
			ResultMode: "auto",
			DeadEnd:    "truncate",
		},
	}
}

// loadConfig returns the defaults overlaid with the file at path. An empty
// path yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

var errConfig = errors.New("invalid config")

func (c fileConfig) validate() error {
	if c.Graph.Edges != "" && c.Graph.Topology != "" {
		return fmt.Errorf("graph: edges and topology are exclusive: %w", errConfig)
	}
	switch c.Walk.Mode {
	case "uniform", "biased":
	default:
		return fmt.Errorf("walk.mode %q: want uniform or biased: %w", c.Walk.Mode, errConfig)
	}
	if _, err := aco.ParseResultMode(c.ACO.ResultMode); err != nil {
		return fmt.Errorf("aco.result_mode: %w", err)
	}
	if err := c.ACO.Config.Validate(); err != nil {
		return fmt.Errorf("aco: %w", err)
	}

	return nil
}
