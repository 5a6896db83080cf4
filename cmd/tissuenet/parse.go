// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tissuenet/raster"
	"github.com/katalvlaran/tissuenet/tissue"
)

type cellSummary struct {
	Label    raster.CellIndex `yaml:"label"`
	Bonds    int              `yaml:"bonds"`
	Area     float64          `yaml:"area"`
	Centroid [2]float64       `yaml:"centroid,flow"`
	Margin   bool             `yaml:"margin,omitempty"`
}

type summary struct {
	Image           string             `yaml:"image"`
	Frame           int                `yaml:"frame"`
	Time            float64            `yaml:"time"`
	Width           int                `yaml:"width"`
	Height          int                `yaml:"height"`
	Vertices        int                `yaml:"vertices"`
	Bonds           int                `yaml:"bonds"`
	Cells           []cellSummary      `yaml:"cells"`
	Ignored         []raster.CellIndex `yaml:"ignored,omitempty,flow"`
	Fragmented      []raster.CellIndex `yaml:"fragmented,omitempty,flow"`
	DividingMarkers int                `yaml:"dividing_markers,omitempty"`
}

func summarize(path string, g graph) summary {
	s := summary{
		Image:           path,
		Frame:           g.Frame(),
		Time:            g.Time(),
		Width:           g.raster.Width,
		Height:          g.raster.Height,
		Vertices:        len(g.Vertices()),
		Bonds:           len(g.Bonds()),
		Ignored:         g.Ignored(),
		Fragmented:      g.Fragmented(),
		DividingMarkers: len(g.raster.DividingMarkers()),
	}
	for i, c := range g.Cells() {
		id := tissue.CellID(i)
		centroid := g.CellCentroid(id)
		s.Cells = append(s.Cells, cellSummary{
			Label:    c.Label,
			Bonds:    len(c.Bonds),
			Area:     g.CellArea(id),
			Centroid: [2]float64{centroid.X, centroid.Y},
			Margin:   c.Margin,
		})
	}
	return s
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <image>",
		Short: "Build the cell graph of an image and print a YAML summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			g, err := s.build(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(summarize(args[0], g)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
