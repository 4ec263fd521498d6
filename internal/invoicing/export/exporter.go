package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/meridian-erp/meridian/internal/invoicing"
)

var (
	// ErrNoDocument is returned when an export is attempted before an
	// invoice with lines has been loaded.
	ErrNoDocument = invoicing.ErrNoDocument
	// ErrNoRenderTarget is returned when no render surface is wired in.
	ErrNoRenderTarget = errors.New("export: render target unavailable")
)

// renderWidth pins the capture viewport to A4 width at 96 dpi so the
// rasterized document fills the printable page exactly.
const renderWidth = 794

// A4 geometry in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	pageMargin = 10.0
)

// RenderTarget is the surface the printable document is shown on for the
// duration of a capture. Hide must always be called after a successful
// Show, whatever happens downstream.
type RenderTarget interface {
	Show(ctx context.Context, inv invoicing.Invoice) (html string, err error)
	Hide()
}

// Rasterizer captures rendered HTML as a single PNG image.
type Rasterizer interface {
	Screenshot(ctx context.Context, html string, width int) ([]byte, error)
}

// Exporter produces the invoice PDF: the document is rendered on the
// target, captured as one tall raster, then sliced across A4 pages.
type Exporter struct {
	logger     *slog.Logger
	target     RenderTarget
	rasterizer Rasterizer
}

func NewExporter(logger *slog.Logger, target RenderTarget, rasterizer Rasterizer) *Exporter {
	return &Exporter{logger: logger, target: target, rasterizer: rasterizer}
}

func (e *Exporter) Export(ctx context.Context, inv invoicing.Invoice) (string, []byte, error) {
	if e.target == nil || e.rasterizer == nil {
		return "", nil, ErrNoRenderTarget
	}
	if inv.Number == "" || len(inv.Lines) == 0 {
		return "", nil, ErrNoDocument
	}

	html, err := e.target.Show(ctx, inv)
	if err != nil {
		return "", nil, fmt.Errorf("render document: %w", err)
	}
	defer e.target.Hide()

	raster, err := e.rasterizer.Screenshot(ctx, html, renderWidth)
	if err != nil {
		return "", nil, fmt.Errorf("rasterize document: %w", err)
	}

	pdf, pages, err := paginate(raster)
	if err != nil {
		return "", nil, fmt.Errorf("paginate document: %w", err)
	}

	filename := fmt.Sprintf("Invoice_%s.pdf", inv.Number)
	e.logger.Info("invoice exported", "invoice", inv.Number, "pages", pages, "bytes", len(pdf))
	return filename, pdf, nil
}

// paginate slices one tall raster across as many A4 pages as it needs.
// Each page draws the full image offset upward and clips to the printable
// area, so page boundaries never duplicate or drop rows of pixels.
func paginate(raster []byte) ([]byte, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raster))
	if err != nil {
		return nil, 0, fmt.Errorf("decode raster: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, 0, errors.New("empty raster")
	}

	usableW := pageWidth - 2*pageMargin
	usableH := pageHeight - 2*pageMargin
	scale := usableW / float64(cfg.Width)
	totalH := float64(cfg.Height) * scale

	pages := int(math.Ceil(totalH / usableH))
	if pages < 1 {
		pages = 1
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("document", opts, bytes.NewReader(raster))

	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.ClipRect(pageMargin, pageMargin, usableW, usableH, false)
		pdf.ImageOptions("document", pageMargin, pageMargin-float64(i)*usableH, usableW, totalH, false, opts, 0, "")
		pdf.ClipEnd()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), pages, nil
}

// pagesFor reports how many A4 pages a raster of the given pixel size
// spans once scaled to the printable width.
func pagesFor(widthPx, heightPx int) int {
	if widthPx <= 0 || heightPx <= 0 {
		return 0
	}
	usableW := pageWidth - 2*pageMargin
	usableH := pageHeight - 2*pageMargin
	totalH := float64(heightPx) * usableW / float64(widthPx)
	pages := int(math.Ceil(totalH / usableH))
	if pages < 1 {
		pages = 1
	}
	return pages
}
