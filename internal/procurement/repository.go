package procurement

import (
	"context"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

const entity = "Purchases"

type Repository interface {
	List(ctx context.Context, q sheetdb.Query) ([]Purchase, error)
	Get(ctx context.Context, id string) (Purchase, error)
	Create(ctx context.Context, p Purchase) (Purchase, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store *sheetdb.Store
}

func NewRepository(store *sheetdb.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context, q sheetdb.Query) ([]Purchase, error) {
	records, err := r.store.List(ctx, entity, q)
	if err != nil {
		return nil, err
	}
	out := make([]Purchase, 0, len(records))
	for _, rec := range records {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, id string) (Purchase, error) {
	rec, err := r.store.Get(ctx, entity, id)
	if err != nil {
		return Purchase{}, err
	}
	return fromRecord(rec), nil
}

func (r *repository) Create(ctx context.Context, p Purchase) (Purchase, error) {
	rec := p.record()
	if p.ID == "" {
		delete(rec, sheetdb.FieldID)
	}
	stored, err := r.store.Create(ctx, entity, rec)
	if err != nil {
		return Purchase{}, err
	}
	return fromRecord(stored), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entity, id)
}
