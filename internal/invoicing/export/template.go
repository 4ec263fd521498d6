package export

import (
	"bytes"
	"context"
	"html/template"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/meridian-erp/meridian/internal/invoicing"
)

// documentTemplate is the printable invoice layout. It is styled for a
// fixed-width viewport so the rasterized capture matches what the user
// sees on screen.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 0; padding: 32px; color: #1a1a2e; }
  h1 { font-size: 26px; margin: 0 0 4px; }
  .muted { color: #6b7280; font-size: 12px; }
  .head { display: flex; justify-content: space-between; margin-bottom: 28px; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th { text-align: left; border-bottom: 2px solid #1a1a2e; padding: 6px 4px; }
  td { border-bottom: 1px solid #e5e7eb; padding: 6px 4px; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 18px; margin-left: auto; width: 280px; font-size: 13px; }
  .totals div { display: flex; justify-content: space-between; padding: 3px 4px; }
  .totals .grand { font-weight: bold; border-top: 2px solid #1a1a2e; margin-top: 4px; padding-top: 6px; }
  .bank { margin-top: 36px; font-size: 12px; }
  .notes { margin-top: 18px; font-size: 12px; white-space: pre-wrap; }
</style>
</head>
<body>
<div class="head">
  <div>
    <h1>Invoice {{.Number}}</h1>
    <div class="muted">Issued {{.IssueDate.Format "02 Jan 2006"}} &middot; Due {{.DueDate.Format "02 Jan 2006"}}</div>
  </div>
  <div>
    <div><strong>{{.CustomerName}}</strong></div>
    <div class="muted">Status: {{.Status}}</div>
  </div>
</div>
<table>
  <thead>
    <tr><th>Description</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">VAT %</th><th class="num">Amount</th></tr>
  </thead>
  <tbody>
    {{- range .Lines}}
    <tr>
      <td>{{.Description}}</td>
      <td class="num">{{qty .Quantity}}</td>
      <td class="num">{{money .UnitPrice}}</td>
      <td class="num">{{qty .VATRate}}</td>
      <td class="num">{{money .LineNet}}</td>
    </tr>
    {{- end}}
  </tbody>
</table>
<div class="totals">
  <div><span>Net</span><span>{{money .NetTotal}} {{.Currency}}</span></div>
  <div><span>VAT</span><span>{{money .VATTotal}} {{.Currency}}</span></div>
  <div class="grand"><span>Total</span><span>{{money .GrandTotal}} {{.Currency}}</span></div>
</div>
{{- if .BankIBAN}}
<div class="bank">
  <strong>Payment details</strong><br>
  {{.BankName}}<br>
  IBAN: {{.BankIBAN}}{{if .BankBIC}} &middot; BIC: {{.BankBIC}}{{end}}
</div>
{{- end}}
{{- if .Notes}}
<div class="notes">{{.Notes}}</div>
{{- end}}
</body>
</html>`

// HTMLTarget renders the printable document and holds it visible until the
// capture is done. Hide releases the rendered copy.
type HTMLTarget struct {
	mu      sync.Mutex
	tmpl    *template.Template
	current string
}

func NewHTMLTarget() *HTMLTarget {
	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"money": func(v float64) string {
			return printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
		},
		"qty": func(v float64) string {
			return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
		},
	}
	return &HTMLTarget{
		tmpl: template.Must(template.New("invoice").Funcs(funcs).Parse(documentTemplate)),
	}
}

func (t *HTMLTarget) Show(ctx context.Context, inv invoicing.Invoice) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, inv); err != nil {
		return "", err
	}
	t.mu.Lock()
	t.current = buf.String()
	t.mu.Unlock()
	return buf.String(), nil
}

func (t *HTMLTarget) Hide() {
	t.mu.Lock()
	t.current = ""
	t.mu.Unlock()
}
