package sales

import (
	"context"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

const entity = "Sales"

type Repository interface {
	List(ctx context.Context, q sheetdb.Query) ([]Sale, error)
	Get(ctx context.Context, id string) (Sale, error)
	Create(ctx context.Context, s Sale) (Sale, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *sheetdb.Store
}

func NewRepository(store *sheetdb.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context, q sheetdb.Query) ([]Sale, error) {
	records, err := r.store.List(ctx, entity, q)
	if err != nil {
		return nil, err
	}
	out := make([]Sale, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (Sale, error) {
	rec, err := r.store.Get(ctx, entity, id)
	if err != nil {
		return Sale{}, err
	}
	return fromRecord(rec), nil
}

func (r *repository) Create(ctx context.Context, s Sale) (Sale, error) {
	rec := s.record()
	if s.ID == "" {
		delete(rec, sheetdb.FieldID)
	}
	stored, err := r.store.Create(ctx, entity, rec)
	if err != nil {
		return Sale{}, err
	}
	return fromRecord(stored), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity, id)
}
