package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/phanxgames/radial"
	"github.com/spf13/cobra"
)

// app holds the flags and config shared by every subcommand.
type app struct {
	configPath string
	debug      bool
	format     string

	cfg fileConfig
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "radial",
		Short:         "Lay out, render and replay emotion wheels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			radial.SetDebugMode(a.debug)
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				a.format = cfg.Format
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "HCL options file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log layout and controller diagnostics")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "auto", "dataset format: auto, flat or emotions")

	root.AddCommand(a.layoutCmd(), a.svgCmd(), a.replayCmd())
	return root
}

// wheel loads the dataset at path and builds a wheel from the config.
func (a *app) wheel(path string) (*radial.Wheel, error) {
	ds, err := loadDataset(path, a.format)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.wheelOptions()
	if err != nil {
		return nil, err
	}
	w, err := radial.NewWheel(ds, opts)
	if err != nil {
		return nil, fmt.Errorf("build wheel from %s: %w", path, err)
	}
	return w, nil
}

func (a *app) theme(flag string) (radial.Theme, error) {
	name := flag
	if name == "" {
		name = a.cfg.Theme
	}
	return radial.ThemeByName(name)
}

// segmentRow is one line of `radial layout --json`.
type segmentRow struct {
	ID       string  `json:"id"`
	Level    string  `json:"level"`
	Parent   string  `json:"parent,omitempty"`
	StartDeg float64 `json:"startDeg"`
	EndDeg   float64 `json:"endDeg"`
}

func (a *app) layoutCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "layout [dataset.json]",
		Short: "Print the computed segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.wheel(args[0])
			if err != nil {
				return err
			}
			segs := w.Layout().Segments()
			if asJSON {
				rows := make([]segmentRow, len(segs))
				for i, s := range segs {
					rows[i] = segmentRow{ID: s.ID, Level: s.Level.String(), Parent: s.ParentID, StartDeg: s.StartDeg, EndDeg: s.EndDeg}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLEVEL\tPARENT\tSTART\tEND\tSPAN")
			for _, s := range segs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.3f\t%.3f\t%.3f\n", s.ID, s.Level, s.ParentID, s.StartDeg, s.EndDeg, s.Span())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print segments as JSON")
	return cmd
}

func (a *app) svgCmd() *cobra.Command {
	var (
		output   string
		theme    string
		labels   bool
		rotate   float64
		selected []string
	)
	cmd := &cobra.Command{
		Use:   "svg [dataset.json]",
		Short: "Render the wheel as an SVG document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.wheel(args[0])
			if err != nil {
				return err
			}
			th, err := a.theme(theme)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rotate") {
				v := w.View().View()
				v.AngleDeg = rotate
				w.View().SetView(v)
			}
			if len(selected) > 0 {
				w.Selection().SetSelected(selected)
			}
			if !cmd.Flags().Changed("labels") {
				labels = a.cfg.Labels
			}
			return writeTo(cmd.OutOrStdout(), output, func(out io.Writer) error {
				return w.WriteSVG(out, th, labels)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&theme, "theme", "", "theme: default, dark or colorful")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw segment labels")
	cmd.Flags().Float64Var(&rotate, "rotate", 0, "view rotation in degrees")
	cmd.Flags().StringSliceVar(&selected, "select", nil, "segment ids to draw as selected")
	return cmd
}

func (a *app) replayCmd() *cobra.Command {
	var (
		svgPath string
		theme   string
	)
	cmd := &cobra.Command{
		Use:   "replay [dataset.json] [script.json]",
		Short: "Replay a gesture script and print each step's outcome",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.wheel(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read gesture script: %w", err)
			}
			script, err := radial.LoadScript(data)
			if err != nil {
				return err
			}
			traces, err := script.Run(w)
			out := cmd.OutOrStdout()
			for _, tr := range traces {
				name := tr.Action
				if tr.Label != "" {
					name += " (" + tr.Label + ")"
				}
				fmt.Fprintf(out, "%3d  %-24s angle=%.3f scale=%.3f effects=%v\n",
					tr.Step, name, tr.View.AngleDeg, tr.View.Scale, tr.Effects)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "selected: %v\n", w.Selection().CanonicalOrder())

			if svgPath == "" {
				return nil
			}
			th, err := a.theme(theme)
			if err != nil {
				return err
			}
			return writeTo(out, svgPath, func(f io.Writer) error {
				return w.WriteSVG(f, th, a.cfg.Labels)
			})
		},
	}
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the final wheel as SVG to this file")
	cmd.Flags().StringVar(&theme, "theme", "", "theme for --svg")
	return cmd
}

// writeTo runs write against path, or against stdout when path is empty.
func writeTo(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
