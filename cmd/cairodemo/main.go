// Command cairodemo renders a scene with the cairo bindings.
//
// Usage:
//
//	cairodemo [-scene scene.yaml] [-output out.png] [-width 800] [-height 600]
//
// The output format follows the file extension: .png, .pdf, .svg, .ps or
// .eps. Without -scene a built-in scene is drawn.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/cairo"
)

var errUnknownFormat = errors.New("unknown output format")

func main() {
	var (
		scenePath = flag.String("scene", "", "YAML scene file (default: built-in scene)")
		output    = flag.String("output", "cairodemo.png", "output file")
		width     = flag.Int("width", 800, "width of the built-in scene")
		height    = flag.Int("height", 600, "height of the built-in scene")
		fontPath  = flag.String("font", "", "TrueType font for text items (default: Go Regular)")
		verbose   = flag.Bool("v", false, "log binding diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *verbose {
		cairo.SetLogger(logger)
	}

	if err := run(logger, *scenePath, *output, *fontPath, *width, *height); err != nil {
		logger.Error("cairodemo failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, scenePath, output, fontPath string, width, height int) error {
	logger.Info("cairo", "version", cairo.VersionString())

	scene := defaultScene(width, height)
	if scenePath != "" {
		s, err := LoadScene(scenePath)
		if err != nil {
			return err
		}
		scene = s
	}
	if scene.Width <= 0 {
		scene.Width = width
	}
	if scene.Height <= 0 {
		scene.Height = height
	}

	fontData := goregular.TTF
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		fontData = data
	}

	r, err := newRenderer(fontData)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := renderFile(r, scene, output); err != nil {
		return err
	}
	logger.Info("rendered", "output", output, "width", scene.Width, "height", scene.Height,
		"items", len(scene.Items))

	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		return reportPDF(logger, output)
	}
	return nil
}

// renderFile renders scene to path in the format named by its extension.
func renderFile(r *renderer, scene *Scene, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return renderTo(r, scene, f, strings.ToLower(filepath.Ext(path)))
}

func renderTo(r *renderer, scene *Scene, w io.Writer, ext string) error {
	width, height := float64(scene.Width), float64(scene.Height)

	switch ext {
	case ".png":
		s, err := cairo.NewImageSurface(cairo.FormatARGB32, scene.Width, scene.Height)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := r.Render(s, scene); err != nil {
			return err
		}
		return s.WriteToPNG(w)
	case ".pdf":
		s, err := cairo.NewPDFSurface(w, width, height)
		if err != nil {
			return err
		}
		defer s.Close()
		return finish(r, s.Surface, scene)
	case ".svg":
		s, err := cairo.NewSVGSurface(w, width, height)
		if err != nil {
			return err
		}
		defer s.Close()
		return finish(r, s.Surface, scene)
	case ".ps", ".eps":
		s, err := cairo.NewPSSurface(w, width, height)
		if err != nil {
			return err
		}
		defer s.Close()
		s.SetEPS(ext == ".eps")
		return finish(r, s.Surface, scene)
	}
	return fmt.Errorf("%w: %q", errUnknownFormat, ext)
}

// finish renders onto a vector surface and flushes it to its writer.
func finish(r *renderer, s *cairo.Surface, scene *Scene) error {
	if err := r.Render(s, scene); err != nil {
		return err
	}
	return s.Finish()
}

func reportPDF(logger *slog.Logger, path string) error {
	n, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("failed to read back %s: %w", path, err)
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return fmt.Errorf("failed to read back %s: %w", path, err)
	}
	for i, d := range dims {
		logger.Info("pdf page", "page", i+1, "of", n, "width", d.Width, "height", d.Height)
	}
	return nil
}
