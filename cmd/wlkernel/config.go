// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/wlkernel/builder"
	"github.com/katalvlaran/wlkernel/edgehist"
	"github.com/katalvlaran/wlkernel/vertexhist"
	"github.com/katalvlaran/wlkernel/wl"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DatasetSpec describes one synthetic graph. Empty Labels means degree
// labels; otherwise labels are assigned cyclically in vertex order.
type DatasetSpec struct {
	Shape  string   `yaml:"shape" validate:"required,oneof=path cycle star wheel complete grid"`
	Size   int      `yaml:"size" validate:"gte=1"`
	Labels []string `yaml:"labels,omitempty"`
}

// RunConfig is the YAML run configuration.
type RunConfig struct {
	Iterations  int           `yaml:"iterations" validate:"gte=1"`
	Normalize   bool          `yaml:"normalize"`
	Verbose     bool          `yaml:"verbose"`
	Concurrency int           `yaml:"concurrency" validate:"gte=0"`
	BaseKernel  string        `yaml:"base_kernel" validate:"oneof=vertex_histogram edge_histogram"`
	Fit         []DatasetSpec `yaml:"fit" validate:"required,min=1,dive"`
	Query       []DatasetSpec `yaml:"query,omitempty" validate:"dive"`
}

var runValidate = validator.New()

// defaultRunConfig is used when no --config file is given.
func defaultRunConfig() RunConfig {
	return RunConfig{
		Iterations: wl.DefaultIterations,
		BaseKernel: vertexhist.Name,
		Fit: []DatasetSpec{
			{Shape: builder.ShapeCycle, Size: 6},
			{Shape: builder.ShapePath, Size: 6},
			{Shape: builder.ShapeStar, Size: 6},
			{Shape: builder.ShapeWheel, Size: 6},
			{Shape: builder.ShapeComplete, Size: 4},
		},
	}
}

// loadRunConfig reads path over the defaults. Keys absent from the file
// keep their default values.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}

	return cfg, nil
}

// validate checks the struct tags.
func (c RunConfig) validate() error {
	if err := runValidate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid run config")
	}

	return nil
}

// factory maps base_kernel to a wl.Factory.
func (c RunConfig) factory() (wl.Factory, error) {
	switch c.BaseKernel {
	case vertexhist.Name:
		return vertexhist.Factory, nil
	case edgehist.Name:
		return edgehist.Factory, nil
	}

	return nil, errors.Errorf("unknown base kernel %q", c.BaseKernel)
}

// options maps the run config to kernel options.
func (c RunConfig) options() []wl.Option {
	return []wl.Option{
		wl.WithIterations(c.Iterations),
		wl.WithNormalize(c.Normalize),
		wl.WithVerbose(c.Verbose),
		wl.WithConcurrency(c.Concurrency),
	}
}

// constructor resolves a spec into a builder constructor and options.
func (d DatasetSpec) constructor() (builder.Constructor, []builder.BuilderOption, error) {
	con, err := builder.ByName(d.Shape, d.Size)
	if err != nil {
		return nil, nil, err
	}
	var opts []builder.BuilderOption
	if len(d.Labels) > 0 {
		opts = append(opts, builder.WithLabels(builder.CyclicLabels(d.Labels...)))
	}

	return con, opts, nil
}
