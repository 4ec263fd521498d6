package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian/internal/invoicing"
)

func sampleInvoice() invoicing.Invoice {
	lines := []invoicing.LineItem{
		{Description: "Consulting hours", Quantity: 2, UnitPrice: 600, VATRate: 20, LineNet: 1200, LineVAT: 240},
		{Description: "Platform licence", Quantity: 1, UnitPrice: 15000, VATRate: 21, LineNet: 15000, LineVAT: 3150},
	}
	return invoicing.Invoice{
		ID:           1,
		Number:       "INV-A1B2C3D4",
		CustomerName: "Ali Traders",
		IssueDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Status:       invoicing.StatusIssued,
		Currency:     "EUR",
		NetTotal:     16200,
		VATTotal:     3390,
		GrandTotal:   19590,
		Lines:        lines,
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type fakeTarget struct {
	shown  int
	hidden int
	fail   bool
}

func (f *fakeTarget) Show(ctx context.Context, inv invoicing.Invoice) (string, error) {
	if f.fail {
		return "", errors.New("surface busy")
	}
	f.shown++
	return "<html>" + inv.Number + "</html>", nil
}

func (f *fakeTarget) Hide() { f.hidden++ }

type fakeRasterizer struct {
	png []byte
	err error
}

func (f *fakeRasterizer) Screenshot(ctx context.Context, html string, width int) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.png, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportProducesNamedPDF(t *testing.T) {
	target := &fakeTarget{}
	exp := NewExporter(discard(), target, &fakeRasterizer{png: encodePNG(t, 794, 1000)})

	filename, pdf, err := exp.Export(context.Background(), sampleInvoice())
	require.NoError(t, err)
	require.Equal(t, "Invoice_INV-A1B2C3D4.pdf", filename)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	require.Equal(t, 1, target.shown)
	require.Equal(t, 1, target.hidden)
}

func TestExportHidesTargetOnRasterizeFailure(t *testing.T) {
	target := &fakeTarget{}
	exp := NewExporter(discard(), target, &fakeRasterizer{err: errors.New("chromium timeout")})

	_, _, err := exp.Export(context.Background(), sampleInvoice())
	require.Error(t, err)
	require.Contains(t, err.Error(), "rasterize document")
	require.Equal(t, 1, target.hidden)
}

func TestExportWithoutDocument(t *testing.T) {
	target := &fakeTarget{}
	exp := NewExporter(discard(), target, &fakeRasterizer{png: encodePNG(t, 10, 10)})

	_, _, err := exp.Export(context.Background(), invoicing.Invoice{})
	require.ErrorIs(t, err, ErrNoDocument)
	require.Zero(t, target.shown)
}

func TestExportWithoutTarget(t *testing.T) {
	exp := NewExporter(discard(), nil, &fakeRasterizer{})
	_, _, err := exp.Export(context.Background(), sampleInvoice())
	require.ErrorIs(t, err, ErrNoRenderTarget)
}

func TestExportShowFailureSkipsHide(t *testing.T) {
	target := &fakeTarget{fail: true}
	exp := NewExporter(discard(), target, &fakeRasterizer{png: encodePNG(t, 10, 10)})

	_, _, err := exp.Export(context.Background(), sampleInvoice())
	require.Error(t, err)
	require.Zero(t, target.hidden)
}

func TestTallRasterSpansPages(t *testing.T) {
	// 794px wide maps to 190mm printable width; 277mm of printable
	// height is roughly 1157px at that scale.
	require.Equal(t, 1, pagesFor(794, 1000))
	require.Equal(t, 2, pagesFor(794, 1200))
	require.Equal(t, 3, pagesFor(794, 2400))
	require.Equal(t, 0, pagesFor(0, 100))
}

func TestExportMultiPagePDF(t *testing.T) {
	target := &fakeTarget{}
	exp := NewExporter(discard(), target, &fakeRasterizer{png: encodePNG(t, 400, 2000)})

	filename, pdf, err := exp.Export(context.Background(), sampleInvoice())
	require.NoError(t, err)
	require.Equal(t, "Invoice_INV-A1B2C3D4.pdf", filename)
	require.Greater(t, len(pdf), 0)
	require.Equal(t, 1, target.hidden)
}

func TestHTMLTargetRendersTotals(t *testing.T) {
	target := NewHTMLTarget()
	html, err := target.Show(context.Background(), sampleInvoice())
	require.NoError(t, err)
	require.Contains(t, html, "INV-A1B2C3D4")
	require.Contains(t, html, "Ali Traders")
	require.Contains(t, html, "16,200.00")
	require.Contains(t, html, "3,390.00")
	require.Contains(t, html, "19,590.00")
	target.Hide()
}
