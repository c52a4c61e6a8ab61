package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/phanxgames/radial"
)

// fileConfig is the HCL options file accepted by --config:
//
//	format = "emotions"
//	theme  = "dark"
//	radius = 190
//
//	selection {
//	  mode         = "multiple"
//	  max_selected = 3
//	  policy       = "reject-new"
//	}
//
//	view {
//	  snap_to_sectors = true
//	  inertia         = true
//	}
type fileConfig struct {
	Format string  `hcl:"format,optional"`
	Theme  string  `hcl:"theme,optional"`
	Radius float64 `hcl:"radius,optional"`
	Labels bool    `hcl:"labels,optional"`

	Layout    *layoutConfig    `hcl:"layout,block"`
	Selection *selectionConfig `hcl:"selection,block"`
	View      *viewConfig      `hcl:"view,block"`
}

type layoutConfig struct {
	WeightedChildren bool `hcl:"weighted_children,optional"`
}

type selectionConfig struct {
	Mode        string   `hcl:"mode,optional"`
	MaxSelected int      `hcl:"max_selected,optional"`
	Policy      string   `hcl:"policy,optional"`
	Initial     []string `hcl:"initial,optional"`
	Disabled    []string `hcl:"disabled,optional"`
	ReadOnly    bool     `hcl:"read_only,optional"`
}

type viewConfig struct {
	Rotation      float64 `hcl:"rotation,optional"`
	Scale         float64 `hcl:"scale,optional"`
	MinScale      float64 `hcl:"min_scale,optional"`
	MaxScale      float64 `hcl:"max_scale,optional"`
	SnapToSectors bool    `hcl:"snap_to_sectors,optional"`
	SnapTolerance float64 `hcl:"snap_tolerance,optional"`
	Inertia       bool    `hcl:"inertia,optional"`
	Friction      float64 `hcl:"friction,optional"`
	EnablePan     bool    `hcl:"enable_pan,optional"`
}

// loadConfig decodes path. An empty path yields the zero config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// wheelOptions converts the file config into wheel options.
func (c fileConfig) wheelOptions() (radial.WheelOptions, error) {
	opts := radial.WheelOptions{Radius: c.Radius}
	if c.Layout != nil {
		opts.Layout.WeightedChildren = c.Layout.WeightedChildren
	}
	if s := c.Selection; s != nil {
		mode, err := radial.ParseSelectionMode(s.Mode)
		if err != nil {
			return opts, err
		}
		policy, err := radial.ParseEvictionPolicy(s.Policy)
		if err != nil {
			return opts, err
		}
		opts.Selection = radial.SelectionOptions{
			Mode:        mode,
			MaxSelected: s.MaxSelected,
			Policy:      policy,
			Initial:     s.Initial,
			DisabledIDs: s.Disabled,
			ReadOnly:    s.ReadOnly,
		}
	}
	if v := c.View; v != nil {
		opts.View = radial.ViewOptions{
			MinScale:         v.MinScale,
			MaxScale:         v.MaxScale,
			SnapToSectors:    v.SnapToSectors,
			SnapToleranceDeg: v.SnapTolerance,
			Inertia:          v.Inertia,
			Friction:         v.Friction,
			EnablePan:        v.EnablePan,
		}
		if v.Rotation != 0 || v.Scale != 0 {
			opts.InitialView = &radial.ViewState{AngleDeg: v.Rotation, Scale: v.Scale}
		}
	}
	return opts, nil
}

// loadDataset reads a dataset in the given format: "flat", "emotions", or
// "auto" (emotions when the document has an "emocoes" key).
func loadDataset(path, format string) (radial.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return radial.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	switch format {
	case "", "auto":
		if bytes.Contains(data, []byte(`"emocoes"`)) {
			format = "emotions"
		} else {
			format = "flat"
		}
	}
	switch format {
	case "flat":
		return radial.LoadDataset(data)
	case "emotions":
		ds, _, err := radial.LoadEmotions(data)
		return ds, err
	}
	return radial.Dataset{}, fmt.Errorf("unknown dataset format %q", format)
}
