package suppliers

import (
	"context"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Supplier, error) {
	return s.repo.List(ctx, sheetdb.Query{Limit: limit, Offset: offset})
}

func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	if err := s.validate(supplier); err != nil {
		return Supplier{}, err
	}
	return s.repo.Create(ctx, supplier)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateSupplierRequest) error {
	fields := sheetdb.Record{}
	if req.Name != nil {
		if err := s.validateName(*req.Name); err != nil {
			return err
		}
		fields["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		fields["contactPerson"] = *req.ContactPerson
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
