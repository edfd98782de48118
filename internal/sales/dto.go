package sales

type CreateSaleRequest struct {
	ProductID     string  `json:"productId" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	SellingPrice  float64 `json:"sellingPrice" validate:"gte=0"`
	Total         float64 `json:"total" validate:"gte=0"`
	Date          string  `json:"date,omitempty"`
	CustomerName  string  `json:"customerName,omitempty" validate:"max=200"`
	PaymentMethod string  `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash card upi other"`
}

type ListSalesRequest struct {
	ProductID     string `json:"productId,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Limit         int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset        int    `json:"offset" validate:"gte=0"`
}
