// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tissuenet/internal/config"
	"github.com/katalvlaran/tissuenet/internal/logging"
	"github.com/katalvlaran/tissuenet/internal/metrics"
	"github.com/katalvlaran/tissuenet/raster"
	"github.com/katalvlaran/tissuenet/tissue"
)

// session carries what every command needs: configuration, logger and
// metrics.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Recorder
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	pairs, _ := cmd.Flags().GetStringArray("set")
	overrides, err := config.ParseOverrides(pairs)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log_level"], _ = cmd.Flags().GetString("log-level")
	}
	cfg, err := config.Load(path, overrides)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		log:     logging.NewWriter(cmd.ErrOrStderr(), level),
		metrics: metrics.New(),
	}, nil
}

// graph loads the image at path and builds its graph, removing margin cells
// when configured.
type graph struct {
	*tissue.Graph
	raster *raster.Raster
}

func (s *session) build(path string) (graph, error) {
	r, err := raster.Load(path)
	if err != nil {
		return graph{}, err
	}

	started := time.Now()
	g, err := tissue.Build(r,
		tissue.WithLogger(s.log.With(slog.String("image", path))),
		tissue.WithFrame(s.cfg.Frame, s.cfg.Time))
	s.metrics.ObserveBuild(time.Since(started), err)
	if err != nil {
		return graph{}, fmt.Errorf("build %s: %w", path, err)
	}

	if s.cfg.RemoveMarginCells {
		n := g.RemoveMarginCells()
		s.log.Debug("margin cells removed", slog.Int("cells", n))
	}
	s.metrics.ObserveGraph(len(g.Vertices()), len(g.Bonds()), len(g.Cells()))

	return graph{Graph: g, raster: r}, nil
}

// close flushes metrics when a metrics file is configured.
func (s *session) close() {
	if s.cfg.MetricsFile == "" {
		return
	}
	if err := s.metrics.WriteFile(s.cfg.MetricsFile); err != nil {
		s.log.Error("writing metrics", slog.String("file", s.cfg.MetricsFile), slog.Any("error", err))
	}
}
