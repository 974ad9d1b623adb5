// Package site orchestrates end-to-end output generation: it walks the
// finalized symbol graph, invokes the renderer once per page, and hands the
// results to the output writer. All steps read the graph; none mutate it.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/doclet"
	"git.home.luguber.info/inful/symdoc/internal/linkmap"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
	"git.home.luguber.info/inful/symdoc/internal/metrics"
	"git.home.luguber.info/inful/symdoc/internal/render"
	"git.home.luguber.info/inful/symdoc/internal/symbolgraph"
	"git.home.luguber.info/inful/symdoc/internal/tutorial"
)

// pageTitles maps file-worthy categories to their page title prefix.
var pageTitles = map[doclet.Category]string{
	doclet.CategoryClasses:    "Class",
	doclet.CategoryExternals:  "External",
	doclet.CategoryMixins:     "Mixin",
	doclet.CategoryModules:    "Module",
	doclet.CategoryNamespaces: "Namespace",
}

// Publisher drives the generation sequence against a finalized graph.
type Publisher struct {
	cfg       *config.Config
	index     *symbolgraph.Index
	registry  *linkmap.Registry
	renderer  render.Renderer
	writer    render.Writer
	tutorials *tutorial.Node
	recorder  metrics.Recorder
	report    *BuildReport
}

// NewPublisher wires the publisher. A nil recorder defaults to no-op.
func NewPublisher(cfg *config.Config, index *symbolgraph.Index, registry *linkmap.Registry,
	renderer render.Renderer, writer render.Writer, tutorials *tutorial.Node,
	recorder metrics.Recorder) *Publisher {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	if tutorials == nil {
		tutorials = &tutorial.Node{}
	}
	return &Publisher{
		cfg:       cfg,
		index:     index,
		registry:  registry,
		renderer:  renderer,
		writer:    writer,
		tutorials: tutorials,
		recorder:  recorder,
		report:    newBuildReport(),
	}
}

// Generate runs the full page-emission sequence and returns the build report.
// Per-page and per-asset failures are logged and skipped; only a violated
// graph invariant aborts the run.
func (p *Publisher) Generate(ctx context.Context) (*BuildReport, error) {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"source_pages", p.generateSourcePages},
		{"globals_page", p.generateGlobalsPage},
		{"index_page", p.generateIndexPage},
		{"symbol_pages", p.generateSymbolPages},
		{"tutorial_pages", p.generateTutorialPages},
		{"toc", p.generateTOC},
		{"static_assets", p.generateStaticAssets},
	}
	for _, step := range steps {
		select {
		case <-ctx.Done():
			return p.report, ctx.Err()
		default:
		}
		t0 := time.Now()
		err := step.fn()
		p.report.StepDurations[step.name] = time.Since(t0)
		if err != nil {
			return p.report, fmt.Errorf("step %s: %w", step.name, err)
		}
	}
	p.report.Duration = time.Since(p.report.StartedAt)
	p.recorder.ObserveGenerateDuration(p.report.Duration)
	if err := p.writeReport(); err != nil {
		slog.Error("Build report generation failed", logfields.Error(err))
	}
	return p.report, nil
}

// writePage renders a view and writes the result. A render failure (including
// an unknown view name) is hard-logged and costs only that page; a write
// failure is logged and counted.
func (p *Publisher) writePage(view, url string, data any, category string) {
	out, err := p.renderer.Render(view, data)
	if err != nil {
		slog.Error("Page render failed", logfields.View(view), logfields.Page(url), logfields.Error(err))
		return
	}
	// Fragment URLs share their container's file; pages are always written to
	// the file portion.
	file := url
	if i := strings.IndexByte(file, '#'); i >= 0 {
		file = file[:i]
	}
	if err := p.writer.Write(file, out); err != nil {
		slog.Error("Page write failed", logfields.Page(file), logfields.Error(err))
		p.report.WriteFailures++
		p.recorder.IncWriteFailure()
		return
	}
	p.report.PagesRendered++
	p.recorder.IncPageRendered(category)
}

// generateSourcePages emits one pretty-printed page per distinct source file.
// Unreadable files are skipped individually.
func (p *Publisher) generateSourcePages() error {
	if p.cfg.Output.DisableSourcePages {
		return nil
	}
	for _, raw := range p.index.SourcePaths() {
		short := p.index.ShortPath(raw)
		if short == "" {
			short = raw
		}
		url := p.registry.RegisterLink(short)
		code, err := os.ReadFile(raw)
		if err != nil {
			slog.Error("Skipping unreadable source file", logfields.Path(raw), logfields.Error(err))
			p.report.SourcePagesSkipped++
			continue
		}
		p.writePage("source", url, map[string]any{
			"Title":     "Source: " + short,
			"ShortPath": short,
			"Code":      string(code),
		}, "source")
	}
	return nil
}

// generateGlobalsPage emits the globals page only when globals exist.
func (p *Publisher) generateGlobalsPage() error {
	globals := p.index.Globals()
	if !globals.HasAny() {
		return nil
	}
	var symbols []*symbolgraph.Symbol
	for _, cat := range doclet.AllCategories {
		symbols = append(symbols, globals.Get(cat)...)
	}
	url := p.registry.RegisterLink(linkmap.GlobalTarget)
	p.writePage("globals", url, map[string]any{
		"Title":   "Globals",
		"Symbols": symbols,
	}, "globals")
	return nil
}

// generateIndexPage emits the landing page from package doclets plus the
// optional readme payload.
func (p *Publisher) generateIndexPage() error {
	readme, err := p.readmeHTML()
	if err != nil {
		slog.Error("Readme rendering failed, landing page continues without it", logfields.Error(err))
	}
	url := p.registry.RegisterLink(linkmap.IndexTarget)
	p.writePage("index", url, map[string]any{
		"Title":    p.cfg.Site.Title,
		"Packages": p.index.Packages(),
		"Readme":   readme,
	}, "index")
	return nil
}

func (p *Publisher) readmeHTML() (string, error) {
	if p.cfg.Site.Readme == "" {
		return "", nil
	}
	data, err := os.ReadFile(p.cfg.Site.Readme)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(data, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// generateSymbolPages emits one page per non-empty file-worthy category under
// every longname in the needs-own-page set, in ingestion order. The
// "package:" pseudo-namespace is excluded.
func (p *Publisher) generateSymbolPages() error {
	for _, lname := range p.index.OwnPageLongnames() {
		if strings.HasPrefix(lname, "package:") {
			continue
		}
		url, ok := p.registry.URLFor(lname)
		if !ok {
			// Every filed file-worthy longname must have been registered at
			// finalize; a miss here means the graph invariants are broken.
			return fmt.Errorf("no registered link for page longname %q", lname)
		}
		bucket := p.index.Longname(lname)
		for _, cat := range doclet.AllCategories {
			if !doclet.OwnPageCategories[cat] || !bucket.Has(cat) {
				continue
			}
			symbols := bucket.Get(cat)
			first := symbols[0]
			var members []*symbolgraph.Symbol
			if mb := p.index.Members(lname); mb != nil {
				for _, mcat := range doclet.AllCategories {
					members = append(members, mb.Get(mcat)...)
				}
			}
			p.writePage("container", url, map[string]any{
				"Title":     fmt.Sprintf("%s: %s", pageTitles[cat], first.Name),
				"ID":        first.ID,
				"Ancestors": first.Ancestors,
				"Symbols":   symbols,
				"Members":   members,
			}, cat.String())
		}
	}
	return nil
}

// generateTutorialPages flattens the tutorial tree breadth first, preserving
// each node's child order.
func (p *Publisher) generateTutorialPages() error {
	queue := append([]*tutorial.Node(nil), p.tutorials.Children...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		queue = append(queue, node.Children...)

		url := p.registry.RegisterLink("tutorial:" + node.Name)
		content, err := node.Content()
		if err != nil {
			slog.Error("Skipping tutorial with unrenderable content",
				logfields.Page(node.Name), logfields.Error(err))
			continue
		}
		children := make([]map[string]string, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, map[string]string{
				"Title": child.Title,
				"URL":   p.registry.RegisterLink("tutorial:" + child.Name),
			})
		}
		p.writePage("tutorial", url, map[string]any{
			"Title":    node.Title,
			"Content":  content,
			"Children": children,
		}, "tutorial")
	}
	return nil
}

// generateTOC emits the table-of-contents payload from a depth-first walk of
// the navigation tree.
func (p *Publisher) generateTOC() error {
	entries := buildTOC(p.index.Nav())
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal toc: %w", err)
	}
	if err := p.writer.Write("toc.json", string(data)); err != nil {
		slog.Error("TOC write failed", logfields.Error(err))
		p.report.WriteFailures++
		p.recorder.IncWriteFailure()
	}
	return nil
}

// generateStaticAssets copies built-in template assets, then user-configured
// static paths.
func (p *Publisher) generateStaticAssets() error {
	p.copyBuiltinStatic()
	p.copyUserStatic(p.cfg.Static)
	return nil
}

func (p *Publisher) writeReport() error {
	p.report.DocletsIngested = p.index.Stats().Ingested
	p.report.SkippedKinds = p.index.Stats().SkippedKinds
	data, err := p.report.Marshal()
	if err != nil {
		return fmt.Errorf("marshal build report: %w", err)
	}
	if err := p.writer.Write("build-report.json", string(data)); err != nil {
		slog.Error("Build report write failed", logfields.Error(err))
	}
	return nil
}
