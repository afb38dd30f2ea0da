package service

import (
	"gestorcash/internal/dto"
	"gestorcash/internal/model"
)

// AggregateByCategory folds expenses into per-category count and total.
// Categories with no expenses are absent from the result.
func AggregateByCategory(expenses []model.Expense) dto.ExpenseStats {
	stats := make(dto.ExpenseStats)
	for _, e := range expenses {
		s := stats[e.Category]
		s.Count++
		s.Total = s.Total.Add(e.Amount)
		stats[e.Category] = s
	}
	return stats
}
