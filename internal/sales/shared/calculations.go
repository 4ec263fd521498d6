package shared

// CalculateLineTotals derives the discount, tax and total amounts for one
// order line from the raw quantity and unit price. Derived amounts are never
// read back from formatted display strings.
func CalculateLineTotals(quantity, unitPrice, discountPercent, taxPercent float64) (discountAmount, taxAmount, lineTotal float64) {
	grossAmount := quantity * unitPrice
	discountAmount = grossAmount * (discountPercent / 100)
	netAmount := grossAmount - discountAmount
	taxAmount = netAmount * (taxPercent / 100)
	lineTotal = netAmount + taxAmount
	return
}
