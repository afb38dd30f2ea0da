package repository

import (
	"context"
	"errors"

	"gestorcash/internal/apierror"
	"gestorcash/internal/dto"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Scope narrows a list query (filters, ordering). Scopes compose as a conjunction.
type Scope func(*gorm.DB) *gorm.DB

// Gateway is the table-level persistence contract instantiated per entity.
// It translates driver errors into the apierror taxonomy so callers never see
// gorm errors.
type Gateway[T any] struct {
	db     *gorm.DB
	entity string // human name used in errors, e.g. "Expense"
	pk     string // primary key column
	// guarded columns are never overwritten by Replace (id, server timestamps).
	guarded []string
	// conflicts maps a unique constraint name to the message clients see.
	conflicts map[string]string
}

func NewGateway[T any](db *gorm.DB, entity, pk string, guarded ...string) *Gateway[T] {
	return &Gateway[T]{
		db:        db,
		entity:    entity,
		pk:        pk,
		guarded:   append([]string{pk}, guarded...),
		conflicts: map[string]string{},
	}
}

// WithConflict names the message reported when constraint is violated.
func (g *Gateway[T]) WithConflict(constraint, msg string) *Gateway[T] {
	g.conflicts[constraint] = msg
	return g
}

// Insert persists rec in a single statement. Duplicate primary keys or
// unique columns are reported by Postgres and surface as ConflictError.
func (g *Gateway[T]) Insert(ctx context.Context, rec *T) error {
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		return g.translate("insert", err)
	}
	return nil
}

func (g *Gateway[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var rec T
	err := g.db.WithContext(ctx).Where(g.pk+" = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(g.entity, id)
		}
		return nil, g.translate("get", err)
	}
	return &rec, nil
}

// List applies scopes, then the skip/limit window.
func (g *Gateway[T]) List(ctx context.Context, page dto.Page, scopes ...Scope) ([]T, error) {
	q := g.query(ctx, scopes).Offset(page.Skip)
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}
	var list []T
	if err := q.Find(&list).Error; err != nil {
		return nil, g.translate("list", err)
	}
	return list, nil
}

// ListAll applies scopes without a window.
func (g *Gateway[T]) ListAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	var list []T
	if err := g.query(ctx, scopes).Find(&list).Error; err != nil {
		return nil, g.translate("list", err)
	}
	return list, nil
}

// Replace overwrites every column of the row identified by id except the
// guarded ones. Zero values are written too.
func (g *Gateway[T]) Replace(ctx context.Context, id string, rec *T) error {
	res := g.db.WithContext(ctx).
		Model(new(T)).
		Where(g.pk+" = ?", id).
		Select("*").
		Omit(g.guarded...).
		Updates(rec)
	if res.Error != nil {
		return g.translate("replace", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound(g.entity, id)
	}
	return nil
}

// Delete removes the row.
func (g *Gateway[T]) Delete(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Where(g.pk+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return g.translate("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound(g.entity, id)
	}
	return nil
}

// Deactivate flips the active flag; the row stays. Deactivating an already
// inactive row is not an error.
func (g *Gateway[T]) Deactivate(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Model(new(T)).Where(g.pk+" = ?", id).Update("active", false)
	if res.Error != nil {
		return g.translate("deactivate", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound(g.entity, id)
	}
	return nil
}

func (g *Gateway[T]) query(ctx context.Context, scopes []Scope) *gorm.DB {
	q := g.db.WithContext(ctx).Model(new(T))
	for _, s := range scopes {
		q = s(q)
	}
	return q
}

const uniqueViolation = "23505"

func (g *Gateway[T]) translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if msg, ok := g.conflicts[pgErr.ConstraintName]; ok {
			return apierror.Conflict(g.entity, msg)
		}
		return apierror.Conflict(g.entity, g.entity+" already exists")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.Conflict(g.entity, g.entity+" already exists")
	}
	return apierror.Storage(op+" "+g.entity, err)
}

// ── Common scopes ─────────────────────────────────────────────────────────────

// Eq adds column = value when value is non-empty.
func Eq(column, value string) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if value == "" {
			return q
		}
		return q.Where(column+" = ?", value)
	}
}

// DateRange bounds a YYYY-MM-DD column inclusively. Lexicographic comparison
// is valid because dates are zero-padded.
func DateRange(column, from, to string) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if from != "" {
			q = q.Where(column+" >= ?", from)
		}
		if to != "" {
			q = q.Where(column+" <= ?", to)
		}
		return q
	}
}

// ActiveOnly keeps rows with active = true when enabled.
func ActiveOnly(enabled bool) Scope {
	return func(q *gorm.DB) *gorm.DB {
		if !enabled {
			return q
		}
		return q.Where("active = ?", true)
	}
}

func OrderBy(clause string) Scope {
	return func(q *gorm.DB) *gorm.DB { return q.Order(clause) }
}
