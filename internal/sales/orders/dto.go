package orders

// CreateOrderInput is the payload for creating or replacing an order.
type CreateOrderInput struct {
	CustomerID int64            `json:"customer_id" validate:"required,gt=0"`
	OrderDate  string           `json:"order_date" validate:"required,datetime=2006-01-02"`
	Lines      []OrderLineInput `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineInput is one requested line; amounts are always derived
// server-side from quantity and unit price.
type OrderLineInput struct {
	ProductID       int64   `json:"product_id" validate:"required,gt=0"`
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice       float64 `json:"unit_price" validate:"gte=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
	TaxPercent      float64 `json:"tax_percent" validate:"gte=0,lte=100"`
}

// StatusInput changes an order's lifecycle state.
type StatusInput struct {
	Status OrderStatus `json:"status" validate:"required,oneof=draft confirmed shipped cancelled"`
}
