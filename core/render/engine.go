package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PageData is passed to every page template.
type PageData struct {
	// Path is the request path.
	Path string
	// Query holds the query string parameters.
	Query map[string]string
	// Dev is true when the renderer runs in development mode.
	Dev bool
}

// Engine renders the pages under <Dir>/pages and serves public assets.
type Engine struct {
	dev      bool
	pagesDir string
	assets   Assets
	logger   *zap.Logger

	// pages is filled by Prepare outside development and read-only afterwards.
	pages map[string]*template.Template
}

// New creates a renderer. A nil assets source serves <Dir>/public.
func New(cfg Config, dev bool, assets Assets, logger *zap.Logger) *Engine {
	if assets == nil {
		assets = NewDirAssets(filepath.Join(cfg.Dir, "public"))
	}
	return &Engine{
		dev:      dev,
		pagesDir: filepath.Join(cfg.Dir, "pages"),
		assets:   assets,
		logger:   logger,
	}
}

// Prepare checks the rendering root and, outside development, compiles every
// page. It must return before the engine handles requests.
func (e *Engine) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(e.pagesDir)
	if err != nil {
		return fmt.Errorf("failed to open pages directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", e.pagesDir)
	}

	if checker, ok := e.assets.(interface{ Check(context.Context) error }); ok {
		if err := checker.Check(ctx); err != nil {
			return err
		}
	}

	if e.dev {
		e.logger.Debug("Development mode, pages are compiled per request", zap.String("dir", e.pagesDir))
		return nil
	}

	pages, err := e.compilePages()
	if err != nil {
		return err
	}
	e.pages = pages
	e.logger.Info("Pages compiled", zap.Int("count", len(pages)))
	return nil
}

func (e *Engine) compilePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template)
	err := filepath.WalkDir(e.pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".html" {
			return nil
		}
		rel, err := filepath.Rel(e.pagesDir, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		tmpl, err := template.ParseFiles(p)
		if err != nil {
			return fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (e *Engine) lookupPage(name string) (*template.Template, bool, error) {
	if !e.dev {
		tmpl, ok := e.pages[name]
		return tmpl, ok, nil
	}

	file := filepath.Join(e.pagesDir, filepath.FromSlash(name))
	info, err := os.Stat(file)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	tmpl, err := template.ParseFiles(file)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse page %s: %w", name, err)
	}
	return tmpl, true, nil
}

// Handle answers the request with a public asset, a page or the 404 page.
func (e *Engine) Handle(c *fiber.Ctx) error {
	name := cleanPath(c.Path())

	if name != "" && (c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead) {
		served, err := e.serveAsset(c, name)
		if err != nil || served {
			return err
		}
	}

	for _, candidate := range pageCandidates(name) {
		tmpl, ok, err := e.lookupPage(candidate)
		if err != nil {
			return err
		}
		if ok {
			return e.render(c, fiber.StatusOK, tmpl)
		}
	}

	return e.notFound(c)
}

func (e *Engine) serveAsset(c *fiber.Ctx, name string) (bool, error) {
	err := e.assets.Send(c, name)
	if errors.Is(err, ErrAssetNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to send asset %s: %w", name, err)
	}
	return true, nil
}

func (e *Engine) render(c *fiber.Ctx, status int, tmpl *template.Template) error {
	query := make(map[string]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		query[string(key)] = string(value)
	})

	var buf bytes.Buffer
	data := PageData{Path: c.Path(), Query: query, Dev: e.dev}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", tmpl.Name(), err)
	}

	c.Status(status)
	c.Type("html")
	return c.Send(buf.Bytes())
}

func (e *Engine) notFound(c *fiber.Ctx) error {
	tmpl, ok, err := e.lookupPage("404.html")
	if err != nil {
		return err
	}
	if ok {
		return e.render(c, fiber.StatusNotFound, tmpl)
	}
	return c.Status(fiber.StatusNotFound).SendString("404 Not Found")
}

// cleanPath turns a request path into a slash separated name relative to the
// root. ".." segments cannot climb above the root.
func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// pageCandidates lists the page files that may serve name, in lookup order.
// Segments starting with "_" are private, and the 404 page only renders
// through notFound.
func pageCandidates(name string) []string {
	switch name {
	case "":
		return []string{"index.html"}
	case "404":
		return nil
	}
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, "_") {
			return nil
		}
	}
	return []string{name + ".html", name + "/index.html"}
}
