package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/orgsite/internal/config"
	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/dom"
	"github.com/ziadkadry99/orgsite/internal/logging"
	"github.com/ziadkadry99/orgsite/internal/nav"
	"github.com/ziadkadry99/orgsite/internal/officers"
	"github.com/ziadkadry99/orgsite/internal/page"
	"github.com/ziadkadry99/orgsite/internal/progress"
	"github.com/ziadkadry99/orgsite/internal/walker"
)

// Output file names.
const (
	IndexFile       = "index.html"
	StyleFile       = "style.css"
	ScriptFile      = "site.js"
	SearchIndexFile = "search-index.json"
)

const tracerName = "github.com/ziadkadry99/orgsite/internal/site"

// Generator builds the static site described by a Config.
type Generator struct {
	Config   *config.Config
	Reporter progress.Reporter
	// LiveReload makes the page connect back to the dev server.
	LiveReload bool

	tracer trace.Tracer
}

// NewGenerator creates a Generator. A nil reporter discards progress.
func NewGenerator(cfg *config.Config, reporter progress.Reporter) *Generator {
	if reporter == nil {
		reporter = progress.Discard{}
	}
	return &Generator{
		Config:   cfg,
		Reporter: reporter,
		tracer:   otel.Tracer(tracerName),
	}
}

// Result summarizes a build.
type Result struct {
	BuildID     string
	Cards       int
	Officers    int
	Slides      int
	StaticFiles int
	Duration    time.Duration
}

// shellData is passed to the page shell template.
type shellData struct {
	Site       config.SiteConfig
	Nav        []nav.Control
	About      template.HTML
	BuildID    string
	LiveReload bool
}

// BuildID identifies the generated assets; it changes whenever the
// stylesheet or script does.
func BuildID() string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(cssContent+jsContent)).String()[:8]
}

// Generate runs every build stage and writes the output directory.
func (g *Generator) Generate(ctx context.Context) (res *Result, err error) {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "site.Generate")
	defer func() { endSpan(span, err) }()

	cfg := g.Config
	log := logging.FromContext(ctx)
	res = &Result{BuildID: BuildID()}

	g.Reporter.Start(5)
	defer g.Reporter.Finish()

	var collections content.Collections
	g.Reporter.Update(1, "Loading content")
	err = g.stage(ctx, "site.load", func(ctx context.Context) error {
		var err error
		collections, err = content.Load(ctx, content.Source{
			DataDir:   cfg.DataDir,
			RosterDB:  cfg.RosterDB,
			HomeLimit: cfg.HomeLimit,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	var shell []byte
	g.Reporter.Update(2, "Rendering page shell")
	err = g.stage(ctx, "site.shell", func(ctx context.Context) error {
		var err error
		shell, err = g.renderShell(ctx, res.BuildID)
		return err
	})
	if err != nil {
		return nil, err
	}

	var p *page.Page
	g.Reporter.Update(3, "Binding content")
	err = g.stage(ctx, "site.bind", func(ctx context.Context) error {
		doc, err := dom.Parse(bytes.NewReader(shell))
		if err != nil {
			return err
		}
		p, err = page.Bind(ctx, doc, collections, page.Options{
			CarouselInterval: cfg.Carousel.Interval,
			OfficerPolicy:    officerPolicy(cfg.Officers),
			Navigation:       navControls(cfg.Navigation),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	res.Cards = len(p.Entries) - p.Officers
	res.Officers = p.Officers
	if p.Carousel != nil {
		res.Slides = p.Carousel.Len()
	}

	g.Reporter.Update(4, "Writing output")
	err = g.stage(ctx, "site.write", func(ctx context.Context) error {
		return g.write(p.Doc, BuildSearchIndex(p.Entries))
	})
	if err != nil {
		return nil, err
	}

	g.Reporter.Update(5, "Copying static files")
	err = g.stage(ctx, "site.static", func(ctx context.Context) error {
		var err error
		res.StaticFiles, err = CopyStatic(cfg.StaticDir, cfg.OutputDir, cfg.Include, cfg.Exclude)
		return err
	})
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int("site.cards", res.Cards),
		attribute.Int("site.officers", res.Officers),
		attribute.Int("site.static_files", res.StaticFiles),
	)
	log.Info("site built",
		"output", cfg.OutputDir,
		"cards", res.Cards,
		"officers", res.Officers,
		"slides", res.Slides,
		"static_files", res.StaticFiles,
		"duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

func (g *Generator) stage(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	ctx, span := g.tracer.Start(ctx, name)
	defer func() { endSpan(span, err) }()
	logging.FromContext(ctx).Debug("build stage", "stage", name)
	return fn(ctx)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// renderShell executes the built-in shell, or the configured layout file.
func (g *Generator) renderShell(ctx context.Context, buildID string) ([]byte, error) {
	cfg := g.Config

	tmpl, err := template.New("page").Parse(pageTemplate)
	if cfg.Layout != "" {
		tmpl, err = template.ParseFiles(cfg.Layout)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	about, err := renderAbout(cfg.About)
	if err != nil {
		return nil, err
	}
	if about == "" {
		logging.FromContext(ctx).Debug("no about page", "path", cfg.About)
	}

	data := shellData{
		Site:       cfg.Site,
		Nav:        navControls(cfg.Navigation),
		About:      about,
		BuildID:    buildID,
		LiveReload: g.LiveReload,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// newMarkdown returns the goldmark instance used for the About section.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)
}

// renderAbout converts the About markdown file to HTML. A missing file
// yields an empty section.
func renderAbout(path string) (template.HTML, error) {
	if path == "" {
		return "", nil
	}
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading about page: %w", err)
	}
	var buf bytes.Buffer
	if err := newMarkdown().Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting about page: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (g *Generator) write(doc *goquery.Document, index []SearchEntry) error {
	out := g.Config.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(out, IndexFile))
	if err != nil {
		return err
	}
	if err := html.Render(f, doc.Get(0)); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", IndexFile, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(out, StyleFile), []byte(cssContent), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(out, ScriptFile), []byte(jsContent), 0o644); err != nil {
		return err
	}
	if err := WriteSearchIndex(index, filepath.Join(out, SearchIndexFile)); err != nil {
		return fmt.Errorf("writing search index: %w", err)
	}
	return nil
}

// CopyStatic publishes files under src whose slash-separated relative path
// matches an include glob and no exclude glob. Files already present in dst
// with identical content are left untouched. It returns the number of
// published files; a missing src publishes nothing.
func CopyStatic(src, dst string, include, exclude []string) (int, error) {
	if src == "" {
		return 0, nil
	}
	assets, err := walker.Walk(walker.Config{RootDir: src, Include: include, Exclude: exclude})
	if err != nil {
		return 0, err
	}
	for _, a := range assets {
		target := filepath.Join(dst, filepath.FromSlash(a.RelPath))
		if h, err := walker.HashFile(target); err == nil && h == a.ContentHash {
			continue
		}
		if err := copyFile(a.Path, target); err != nil {
			return 0, fmt.Errorf("copying %s: %w", a.RelPath, err)
		}
	}
	return len(assets), nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func officerPolicy(bps []config.GridBreakpoint) officers.Policy {
	p := make(officers.Policy, 0, len(bps))
	for _, bp := range bps {
		p = append(p, officers.Breakpoint{AfterCount: bp.AfterCount, Header: bp.Header, Columns: bp.Columns})
	}
	return p
}

// navControls converts the configured controls, falling back to the default
// navigation bar.
func navControls(ctls []config.NavControl) []nav.Control {
	if len(ctls) == 0 {
		ctls = config.DefaultNavigation()
	}
	out := make([]nav.Control, 0, len(ctls))
	for _, c := range ctls {
		out = append(out, nav.Control{ID: c.ID, Target: c.Target, Label: c.Label})
	}
	return out
}
