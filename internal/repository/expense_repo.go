package repository

import (
	"context"

	"gestorcash/internal/dto"
	"gestorcash/internal/model"

	"gorm.io/gorm"
)

// ExpenseRepository lists newest-created first.
type ExpenseRepository interface {
	CRUD[model.Expense, dto.ExpenseFilter]
	// ListForStats returns every expense matching the filter, unpaginated.
	ListForStats(ctx context.Context, filter dto.ExpenseStatsFilter) ([]model.Expense, error)
}

type expenseRepo struct {
	*table[model.Expense, dto.ExpenseFilter]
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{&table[model.Expense, dto.ExpenseFilter]{
		gw:     NewGateway[model.Expense](db, "Expense", "id", "created_at"),
		scopes: expenseScopes,
	}}
}

func expenseScopes(f dto.ExpenseFilter) (dto.Page, []Scope) {
	return f.Page, []Scope{
		Eq("store_id", f.StoreID),
		Eq("category", f.Category),
		Eq("date", f.Date),
		DateRange("date", f.DateFrom, f.DateTo),
		OrderBy("created_at desc, id desc"),
	}
}

func (r *expenseRepo) ListForStats(ctx context.Context, f dto.ExpenseStatsFilter) ([]model.Expense, error) {
	return r.gw.ListAll(ctx,
		Eq("store_id", f.StoreID),
		DateRange("date", f.DateFrom, f.DateTo),
	)
}
