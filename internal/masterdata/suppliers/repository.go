package suppliers

import (
	"context"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

const entity = "Suppliers"

type Repository interface {
	List(ctx context.Context, q sheetdb.Query) ([]Supplier, error)
	Get(ctx context.Context, id string) (Supplier, error)
	Create(ctx context.Context, s Supplier) (Supplier, error)
	Update(ctx context.Context, id string, fields sheetdb.Record) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *sheetdb.Store
}

func NewRepository(store *sheetdb.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context, q sheetdb.Query) ([]Supplier, error) {
	records, err := r.store.List(ctx, entity, q)
	if err != nil {
		return nil, err
	}
	out := make([]Supplier, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (Supplier, error) {
	rec, err := r.store.Get(ctx, entity, id)
	if err != nil {
		return Supplier{}, err
	}
	return fromRecord(rec), nil
}

func (r *repository) Create(ctx context.Context, s Supplier) (Supplier, error) {
	rec := s.record()
	if s.ID == "" {
		delete(rec, sheetdb.FieldID)
	}
	stored, err := r.store.Create(ctx, entity, rec)
	if err != nil {
		return Supplier{}, err
	}
	return fromRecord(stored), nil
}

func (r *repository) Update(ctx context.Context, id string, fields sheetdb.Record) error {
	rec := make(sheetdb.Record, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec[sheetdb.FieldID] = id
	return r.store.Update(ctx, entity, rec)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity, id)
}
