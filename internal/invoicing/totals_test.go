package invoicing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeTotalsMixedRates(t *testing.T) {
	lines := []LineItem{
		{Description: "Consulting hours", Quantity: 2, UnitPrice: 600, VATRate: 20},
		{Description: "Platform licence", Quantity: 1, UnitPrice: 15000, VATRate: 21},
	}

	got := ComputeTotals(lines)

	require.InDelta(t, 16200.0, got.Net, 0.0001)
	require.InDelta(t, 3390.0, got.VAT, 0.0001)
	require.InDelta(t, 19590.0, got.Grand, 0.0001)
}

func TestComputeTotalsEmptyInvoice(t *testing.T) {
	got := ComputeTotals(nil)
	require.Zero(t, got.Net)
	require.Zero(t, got.VAT)
	require.Zero(t, got.Grand)
}

func TestComputeTotalsZeroRate(t *testing.T) {
	got := ComputeTotals([]LineItem{{Quantity: 3, UnitPrice: 100, VATRate: 0}})
	require.InDelta(t, 300.0, got.Net, 0.0001)
	require.Zero(t, got.VAT)
	require.InDelta(t, 300.0, got.Grand, 0.0001)
}

func TestLineAmountsMatchTotals(t *testing.T) {
	line := LineItem{Quantity: 4, UnitPrice: 250, VATRate: 10}
	net, vat := LineAmounts(line)
	require.InDelta(t, 1000.0, net, 0.0001)
	require.InDelta(t, 100.0, vat, 0.0001)

	sum := ComputeTotals([]LineItem{line})
	require.InDelta(t, sum.Net, net, 0.0001)
	require.InDelta(t, sum.VAT, vat, 0.0001)
}
