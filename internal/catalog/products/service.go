package products

import (
	"context"
	"strconv"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, req ListProductsRequest) ([]Product, error) {
	filters := map[string]string{}
	if req.Category != "" {
		filters["category"] = req.Category
	}
	if req.SupplierID != "" {
		filters["supplierId"] = req.SupplierID
	}
	return s.repo.List(ctx, sheetdb.Query{Filters: filters, Limit: req.Limit, Offset: req.Offset})
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	p := Product{
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		SKU:               req.SKU,
		Barcode:           req.Barcode,
		Quantity:          req.Quantity,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		SupplierID:        req.SupplierID,
		LowStockThreshold: req.LowStockThreshold,
	}
	return s.repo.Create(ctx, p)
}

// Update overwrites only the fields present in the request; the rest of the
// row is left untouched.
func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) error {
	fields := sheetdb.Record{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.SKU != nil {
		fields["sku"] = *req.SKU
	}
	if req.Barcode != nil {
		fields["barcode"] = *req.Barcode
	}
	if req.Quantity != nil {
		fields["quantity"] = strconv.Itoa(*req.Quantity)
	}
	if req.CostPrice != nil {
		fields["costPrice"] = formatFloat(*req.CostPrice)
	}
	if req.SellingPrice != nil {
		fields["sellingPrice"] = formatFloat(*req.SellingPrice)
	}
	if req.SupplierID != nil {
		fields["supplierId"] = *req.SupplierID
	}
	if req.LowStockThreshold != nil {
		fields["lowStockThreshold"] = strconv.Itoa(*req.LowStockThreshold)
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AdjustQuantity shifts a product's stock level by delta (negative for a
// sale, positive for a purchase) and returns the new quantity. Stock never
// goes below zero.
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) (int, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	next := p.Quantity + delta
	if next < 0 {
		next = 0
	}
	if err := s.repo.Update(ctx, id, sheetdb.Record{"quantity": strconv.Itoa(next)}); err != nil {
		return 0, err
	}
	return next, nil
}

// LowStock returns products at or below their low-stock threshold. Products
// without an own threshold use the fallback (the shop-wide setting).
func (s *Service) LowStock(ctx context.Context, fallbackThreshold int) ([]Product, error) {
	all, err := s.repo.List(ctx, sheetdb.Query{})
	if err != nil {
		return nil, err
	}
	low := make([]Product, 0)
	for _, p := range all {
		threshold := p.LowStockThreshold
		if threshold <= 0 {
			threshold = fallbackThreshold
		}
		if threshold > 0 && p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}
