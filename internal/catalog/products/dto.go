package products

type CreateProductRequest struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Category          string  `json:"category" validate:"max=100"`
	Description       string  `json:"description"`
	SKU               string  `json:"sku" validate:"max=100"`
	Barcode           string  `json:"barcode" validate:"max=100"`
	Quantity          int     `json:"quantity" validate:"gte=0"`
	CostPrice         float64 `json:"costPrice" validate:"gte=0"`
	SellingPrice      float64 `json:"sellingPrice" validate:"gte=0"`
	SupplierID        string  `json:"supplierId"`
	LowStockThreshold int     `json:"lowStockThreshold" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Category          *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Description       *string  `json:"description,omitempty"`
	SKU               *string  `json:"sku,omitempty" validate:"omitempty,max=100"`
	Barcode           *string  `json:"barcode,omitempty" validate:"omitempty,max=100"`
	Quantity          *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	CostPrice         *float64 `json:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SellingPrice      *float64 `json:"sellingPrice,omitempty" validate:"omitempty,gte=0"`
	SupplierID        *string  `json:"supplierId,omitempty"`
	LowStockThreshold *int     `json:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
}

type ListProductsRequest struct {
	Category   string `json:"category,omitempty"`
	SupplierID string `json:"supplierId,omitempty"`
	Limit      int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int    `json:"offset" validate:"gte=0"`
}
