package service

import (
	"context"

	"gestorcash/internal/repository"

	"github.com/shopspring/decimal"
)

// resource is the create/read/update/delete flow shared by every entity:
// id-targeted operations confirm existence first, so a missing row is always
// reported as NotFoundError rather than masked by a later constraint error.
type resource[T any, F any, R any] struct {
	repo repository.CRUD[T, F]
	view func(*T) R
}

func (r resource[T, F, R]) create(ctx context.Context, rec *T) (R, error) {
	if err := r.repo.Create(ctx, rec); err != nil {
		var zero R
		return zero, err
	}
	return r.view(rec), nil
}

func (r resource[T, F, R]) get(ctx context.Context, id string) (R, error) {
	rec, err := r.repo.FindByID(ctx, id)
	if err != nil {
		var zero R
		return zero, err
	}
	return r.view(rec), nil
}

func (r resource[T, F, R]) list(ctx context.Context, filter F) ([]R, error) {
	list, err := r.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(list))
	for i := range list {
		out = append(out, r.view(&list[i]))
	}
	return out, nil
}

// replace loads the stored record, lets apply overwrite every mutable field,
// and writes the whole record back. Id and server timestamps survive because
// apply never touches them.
func (r resource[T, F, R]) replace(ctx context.Context, id string, apply func(*T)) (R, error) {
	var zero R
	rec, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return zero, err
	}
	apply(rec)
	if err := r.repo.Replace(ctx, id, rec); err != nil {
		return zero, err
	}
	return r.view(rec), nil
}

func (r resource[T, F, R]) remove(ctx context.Context, id string) error {
	if _, err := r.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return r.repo.Remove(ctx, id)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// decimalOr and intOr read figures that validation has already required.
func decimalOr(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

func intOr(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
