package invoicing

// Totals are the three amounts printed at the foot of an invoice.
type Totals struct {
	Net   float64 `json:"net"`
	VAT   float64 `json:"vat"`
	Grand float64 `json:"grand"`
}

// ComputeTotals derives the invoice totals from its line items. The net is
// the sum of quantity times unit price, the VAT applies each line's own
// rate, and the grand total is their sum. An invoice without lines totals
// to zero rather than erroring.
func ComputeTotals(lines []LineItem) Totals {
	var t Totals
	for _, line := range lines {
		t.Net += line.Quantity * line.UnitPrice
		t.VAT += line.UnitPrice * (line.VATRate / 100) * line.Quantity
	}
	t.Grand = t.Net + t.VAT
	return t
}

// LineAmounts returns the net and VAT for a single line, using the same
// arithmetic as ComputeTotals.
func LineAmounts(line LineItem) (net, vat float64) {
	net = line.Quantity * line.UnitPrice
	vat = line.UnitPrice * (line.VATRate / 100) * line.Quantity
	return net, vat
}
