package repository

import (
	"context"

	"gestorcash/internal/dto"
)

// CRUD is the per-entity persistence contract used by services. Remove is a
// hard delete or a soft delete depending on the entity.
type CRUD[T any, F any] interface {
	Create(ctx context.Context, rec *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, filter F) ([]T, error)
	Replace(ctx context.Context, id string, rec *T) error
	Remove(ctx context.Context, id string) error
}

type removeMode int

const (
	hardDelete removeMode = iota
	softDelete
)

// table binds a Gateway to one filter type: scopes turns a filter into its
// window plus the allow-listed conditions and ordering.
type table[T any, F any] struct {
	gw     *Gateway[T]
	scopes func(F) (dto.Page, []Scope)
	remove removeMode
}

func (t *table[T, F]) Create(ctx context.Context, rec *T) error {
	return t.gw.Insert(ctx, rec)
}

func (t *table[T, F]) FindByID(ctx context.Context, id string) (*T, error) {
	return t.gw.GetByID(ctx, id)
}

func (t *table[T, F]) List(ctx context.Context, filter F) ([]T, error) {
	page, scopes := t.scopes(filter)
	return t.gw.List(ctx, page, scopes...)
}

func (t *table[T, F]) Replace(ctx context.Context, id string, rec *T) error {
	return t.gw.Replace(ctx, id, rec)
}

func (t *table[T, F]) Remove(ctx context.Context, id string) error {
	if t.remove == softDelete {
		return t.gw.Deactivate(ctx, id)
	}
	return t.gw.Delete(ctx, id)
}
