// package bundle generates the documentation page: it loads a directory of documents and writes them,
// with everything needed to browse them, into one HTML file in that same directory.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gitlab.com/efronlicht/docbundle/docs"
	"gitlab.com/efronlicht/docbundle/page"
	"gitlab.com/efronlicht/docbundle/render"
	"gitlab.com/efronlicht/docbundle/viewer"
	"go.uber.org/zap"
)

const (
	DefaultDir    = "Docs"
	DefaultOutput = "Documentación.html"
)

// Config for Generate. The zero value generates ./Docs/Documentación.html from ./Docs/*.md.
type Config struct {
	Dir     string   // source directory; the output is written here too.
	Output  string   // output filename inside Dir: a bare name, no directories.
	Ext     string   // only files ending in Ext are bundled.
	Markers []string // priority markers for the first document shown. nil means viewer.Markers.

	// Prerender, if set, renders every document ahead of time into a <noscript> fallback.
	Prerender bool
	Renderer  render.Renderer // nil means render.Markdown.

	Now     func() time.Time // nil means time.Now.
	BuildID uuid.UUID        // stamped into the page. zero means a fresh one.
}

// ErrBadOutput is returned by Generate when Config.Output isn't a bare filename.
var ErrBadOutput = errors.New("output must be a file name inside the source directory")

func (cfg Config) withDefaults() Config {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Ext == "" {
		cfg.Ext = docs.Ext
	}
	if cfg.Markers == nil {
		cfg.Markers = viewer.Markers
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.Markdown{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BuildID == (uuid.UUID{}) {
		cfg.BuildID = uuid.New()
	}
	return cfg
}

// Generate builds the page and writes it, replacing any previous one. It returns the absolute path written.
// Either the whole page is written or nothing is: any error leaves the previous output untouched.
func Generate(cfg Config) (string, error) {
	cfg = cfg.withDefaults()
	if filepath.Base(cfg.Output) != cfg.Output || cfg.Output == "." || cfg.Output == ".." {
		return "", fmt.Errorf("%q: %w", cfg.Output, ErrBadOutput)
	}
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", cfg.Dir, err)
	}
	dst := filepath.Join(dir, cfg.Output)
	logger := zap.L().With(zap.String("dir", dir), zap.Stringer("build_id", cfg.BuildID))

	m, err := docs.Load(dir, cfg.Ext, cfg.Output)
	if err != nil {
		return "", err
	}
	logger.Info("loaded documents", zap.Int("count", len(m)))

	data, err := docs.Marshal(m)
	if err != nil {
		return "", err
	}
	d := page.Data{
		Docs:      template.JS(data),
		Ext:       cfg.Ext,
		Markers:   cfg.Markers,
		Generated: cfg.Now(),
		BuildID:   cfg.BuildID.String(),
	}
	if cfg.Prerender {
		if d.Fallback, err = page.Sections(m, cfg.Ext, cfg.Renderer); err != nil {
			return "", err
		}
		logger.Debug("prerendered fallback", zap.Int("sections", len(d.Fallback)))
	}

	var buf bytes.Buffer
	if err := page.Compose(&buf, d); err != nil {
		return "", err
	}
	if err := WriteFile(dst, buf.Bytes()); err != nil {
		return "", err
	}
	logger.Info("wrote page", zap.String("path", dst), zap.Int("bytes", buf.Len()))
	return dst, nil
}
