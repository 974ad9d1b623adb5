package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/doclet"
	"git.home.luguber.info/inful/symdoc/internal/linkmap"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/render"
	"git.home.luguber.info/inful/symdoc/internal/symbolgraph"
	"git.home.luguber.info/inful/symdoc/internal/tutorial"
)

// Run executes one full ingest → finalize → generate sequence from
// configuration. The registry and graph live exactly as long as the run.
func Run(ctx context.Context, cfg *config.Config, recorder metrics.Recorder) (*BuildReport, error) {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	store, err := doclet.LoadFile(cfg.Input.Doclets)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded doclet store", logfields.Count(store.Len()), logfields.Path(cfg.Input.Doclets))

	index := symbolgraph.NewIndex()
	stats := index.Ingest(store)
	recorder.AddDocletsIngested(stats.Ingested)
	recorder.AddSkippedKinds(stats.SkippedKinds)

	registry := linkmap.NewRegistry()
	// Reserve the synthetic page names before symbol links are assigned so a
	// symbol literally named "index" or "global" cannot claim their files.
	registry.RegisterLink(linkmap.IndexTarget)
	registry.RegisterLink(linkmap.GlobalTarget)

	if err := index.Finalize(registry); err != nil {
		return nil, err
	}

	engine, err := render.NewEngine(cfg.Input.Templates, registry)
	if err != nil {
		return nil, err
	}

	tutorials, err := tutorial.LoadDir(cfg.Input.Tutorials)
	if err != nil {
		return nil, err
	}

	if cfg.Output.Clean {
		if err := os.RemoveAll(cfg.Output.Directory); err != nil {
			return nil, fmt.Errorf("clean destination: %w", err)
		}
	}
	writer, err := render.NewDiskWriter(cfg.Output.Directory)
	if err != nil {
		return nil, err
	}

	pub := NewPublisher(cfg, index, registry, engine, writer, tutorials, recorder)
	report, err := pub.Generate(ctx)
	if err != nil {
		return report, err
	}
	slog.Info("Site generation completed",
		logfields.Count(report.PagesRendered), logfields.Path(cfg.Output.Directory))
	return report, nil
}
