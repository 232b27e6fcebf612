// SPDX-License-Identifier: MIT

package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antwalk/aco"
	"github.com/katalvlaran/antwalk/core"
)

func TestDefaultConfig(t *testing.T) {
	cfg := aco.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.NumWalks)
	assert.Equal(t, 10, cfg.MaxStep)
	assert.Equal(t, 1, cfg.NumIterations)
	assert.Equal(t, 80, cfg.ExplorationLength)
	assert.Equal(t, aco.ScanOverlapping, cfg.Scan)
	assert.Equal(t, aco.WindowExclusive, cfg.Window)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*aco.Config)
	}{
		{name: "num_walks", mutate: func(c *aco.Config) { c.NumWalks = 0 }},
		{name: "max_step zero", mutate: func(c *aco.Config) { c.MaxStep = 0 }},
		{name: "max_step too long", mutate: func(c *aco.Config) { c.MaxStep = 81 }},
		{name: "iterations", mutate: func(c *aco.Config) { c.NumIterations = -1 }},
		{name: "threads", mutate: func(c *aco.Config) { c.NumThreads = 0 }},
		{name: "exploration", mutate: func(c *aco.Config) { c.ExplorationLength = 0 }},
		{name: "alpha", mutate: func(c *aco.Config) { c.Alpha = math.NaN() }},
		{name: "alpha negative", mutate: func(c *aco.Config) { c.Alpha = -1 }},
		{name: "evaporate", mutate: func(c *aco.Config) { c.Evaporate = math.Inf(1) }},
		{name: "evaporate above one", mutate: func(c *aco.Config) { c.Evaporate = 1.5 }},
		{name: "scan", mutate: func(c *aco.Config) { c.Scan = 9 }},
		{name: "window", mutate: func(c *aco.Config) { c.Window = 9 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := aco.DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, aco.ErrInvalidConfig)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}

	// Range edges stay valid.
	cfg := aco.DefaultConfig()
	cfg.Alpha, cfg.Evaporate = 0, 1
	require.NoError(t, cfg.Validate())
	cfg.Evaporate = -0.5
	require.NoError(t, cfg.Validate())
}

func TestConfig_YAML(t *testing.T) {
	src := []byte("num_walks: 4\nmax_step: 5\nnum_iterations: 2\nalpha: 0.5\nevaporate: 0.1\nscan: disjoint\nwindow: inclusive\n")
	cfg := aco.DefaultConfig()
	require.NoError(t, yaml.Unmarshal(src, &cfg))

	assert.Equal(t, 4, cfg.NumWalks)
	assert.Equal(t, 5, cfg.MaxStep)
	assert.Equal(t, 2, cfg.NumIterations)
	assert.InDelta(t, 0.5, cfg.Alpha, eps)
	assert.InDelta(t, 0.1, cfg.Evaporate, eps)
	assert.Equal(t, aco.ScanDisjoint, cfg.Scan)
	assert.Equal(t, aco.WindowInclusive, cfg.Window)
	assert.Equal(t, aco.DefaultExplorationLength, cfg.ExplorationLength)

	require.Error(t, yaml.Unmarshal([]byte("scan: sideways\n"), &cfg))
	require.ErrorIs(t, yaml.Unmarshal([]byte("window: open\n"), &cfg), aco.ErrInvalidConfig)

	out, err := yaml.Marshal(aco.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(out), "window: exclusive")
}

func TestParseResultMode(t *testing.T) {
	for in, want := range map[string]aco.ResultMode{
		"auto": aco.ResultAuto,
		"raw":  aco.ResultRaw,
		"exp":  aco.ResultExponentiated,
	} {
		got, err := aco.ParseResultMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	_, err := aco.ParseResultMode("cubic")
	require.ErrorIs(t, err, aco.ErrInvalidConfig)
}

func TestLabels_Validate(t *testing.T) {
	require.NoError(t, aco.Labels{1: {3}}.Validate())
	require.ErrorIs(t, aco.Labels{1: {3}, 2: nil}.Validate(), aco.ErrInvalidLabels)
}
