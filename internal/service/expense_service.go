package service

import (
	"context"
	"time"

	"gestorcash/internal/dto"
	"gestorcash/internal/model"
	"gestorcash/internal/repository"
)

// ExpenseService manages petty-cash expenses and their category statistics.
type ExpenseService interface {
	Create(ctx context.Context, req dto.ExpenseRequest) (dto.ExpenseResponse, error)
	Get(ctx context.Context, id string) (dto.ExpenseResponse, error)
	List(ctx context.Context, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error)
	Update(ctx context.Context, id string, req dto.ExpenseRequest) (dto.ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
	StatsByCategory(ctx context.Context, filter dto.ExpenseStatsFilter) (dto.ExpenseStats, error)
}

type expenseService struct {
	resource[model.Expense, dto.ExpenseFilter, dto.ExpenseResponse]
	repo  repository.ExpenseRepository
	today func() string
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{
		resource: resource[model.Expense, dto.ExpenseFilter, dto.ExpenseResponse]{repo: repo, view: mapExpense},
		repo:     repo,
		today:    func() string { return time.Now().Format(time.DateOnly) },
	}
}

func mapExpense(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:            e.ID,
		Category:      e.Category,
		Item:          e.Item,
		Amount:        e.Amount,
		Description:   e.Description,
		AttachmentURL: e.AttachmentURL,
		StoreID:       e.StoreID,
		RegisterID:    e.RegisterID,
		Date:          e.Date,
		UserID:        e.UserID,
		CreatedAt:     e.CreatedAt,
	}
}

func (s *expenseService) applyExpense(e *model.Expense, req dto.ExpenseRequest) {
	e.Category = req.Category
	e.Item = req.Item
	e.Amount = req.Amount
	e.Description = req.Description
	e.AttachmentURL = req.AttachmentURL
	e.StoreID = req.StoreID
	e.RegisterID = req.RegisterID
	e.UserID = req.UserID
	e.Date = req.Date
	if e.Date == nil {
		d := s.today()
		e.Date = &d
	}
}

func (s *expenseService) Create(ctx context.Context, req dto.ExpenseRequest) (dto.ExpenseResponse, error) {
	var e model.Expense
	s.applyExpense(&e, req)
	return s.create(ctx, &e)
}

func (s *expenseService) Get(ctx context.Context, id string) (dto.ExpenseResponse, error) {
	return s.get(ctx, id)
}

func (s *expenseService) List(ctx context.Context, filter dto.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	return s.list(ctx, filter)
}

func (s *expenseService) Update(ctx context.Context, id string, req dto.ExpenseRequest) (dto.ExpenseResponse, error) {
	return s.replace(ctx, id, func(e *model.Expense) { s.applyExpense(e, req) })
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}

func (s *expenseService) StatsByCategory(ctx context.Context, filter dto.ExpenseStatsFilter) (dto.ExpenseStats, error) {
	list, err := s.repo.ListForStats(ctx, filter)
	if err != nil {
		return nil, err
	}
	return AggregateByCategory(list), nil
}
