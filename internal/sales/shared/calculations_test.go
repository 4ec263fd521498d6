package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateLineTotals(t *testing.T) {
	discount, tax, total := CalculateLineTotals(2, 600, 0, 20)
	require.Zero(t, discount)
	require.InDelta(t, 240, tax, 1e-9)
	require.InDelta(t, 1440, total, 1e-9)
}

func TestCalculateLineTotalsWithDiscount(t *testing.T) {
	discount, tax, total := CalculateLineTotals(10, 100, 10, 15)
	require.InDelta(t, 100, discount, 1e-9)
	require.InDelta(t, 135, tax, 1e-9)
	require.InDelta(t, 1035, total, 1e-9)
}

func TestCalculateLineTotalsZeroQuantity(t *testing.T) {
	discount, tax, total := CalculateLineTotals(0, 500, 5, 20)
	require.Zero(t, discount)
	require.Zero(t, tax)
	require.Zero(t, total)
}
