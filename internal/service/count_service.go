package service

import (
	"context"

	"gestorcash/internal/dto"
	"gestorcash/internal/model"
	"gestorcash/internal/repository"
)

// OpeningCountService manages till opening counts (hard delete).
type OpeningCountService interface {
	Create(ctx context.Context, req dto.OpeningCountRequest) (dto.OpeningCountResponse, error)
	Get(ctx context.Context, id string) (dto.OpeningCountResponse, error)
	List(ctx context.Context, filter dto.CountFilter) ([]dto.OpeningCountResponse, error)
	Update(ctx context.Context, id string, req dto.OpeningCountRequest) (dto.OpeningCountResponse, error)
	Delete(ctx context.Context, id string) error
}

type openingCountService struct {
	resource[model.OpeningCount, dto.CountFilter, dto.OpeningCountResponse]
}

func NewOpeningCountService(repo repository.OpeningCountRepository) OpeningCountService {
	return &openingCountService{resource[model.OpeningCount, dto.CountFilter, dto.OpeningCountResponse]{
		repo: repo,
		view: mapOpeningCount,
	}}
}

func mapOpeningCount(o *model.OpeningCount) dto.OpeningCountResponse {
	return dto.OpeningCountResponse{
		ID:         o.ID,
		RegisterID: o.RegisterID,
		StoreID:    o.StoreID,
		Amount:     o.Amount,
		Date:       o.Date,
		UserID:     o.UserID,
		UserName:   o.UserName,
		Timestamp:  o.Timestamp,
	}
}

func applyOpeningCount(o *model.OpeningCount, req dto.OpeningCountRequest) {
	o.RegisterID = req.RegisterID
	o.StoreID = req.StoreID
	o.Amount = req.Amount
	o.Date = req.Date
	o.UserID = req.UserID
	o.UserName = req.UserName
}

func (s *openingCountService) Create(ctx context.Context, req dto.OpeningCountRequest) (dto.OpeningCountResponse, error) {
	var o model.OpeningCount
	applyOpeningCount(&o, req)
	return s.create(ctx, &o)
}

func (s *openingCountService) Get(ctx context.Context, id string) (dto.OpeningCountResponse, error) {
	return s.get(ctx, id)
}

func (s *openingCountService) List(ctx context.Context, filter dto.CountFilter) ([]dto.OpeningCountResponse, error) {
	return s.list(ctx, filter)
}

func (s *openingCountService) Update(ctx context.Context, id string, req dto.OpeningCountRequest) (dto.OpeningCountResponse, error) {
	return s.replace(ctx, id, func(o *model.OpeningCount) { applyOpeningCount(o, req) })
}

func (s *openingCountService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}

// ClosingCountService manages end-of-shift counts (hard delete).
type ClosingCountService interface {
	Create(ctx context.Context, req dto.ClosingCountRequest) (dto.ClosingCountResponse, error)
	Get(ctx context.Context, id string) (dto.ClosingCountResponse, error)
	List(ctx context.Context, filter dto.CountFilter) ([]dto.ClosingCountResponse, error)
	Update(ctx context.Context, id string, req dto.ClosingCountRequest) (dto.ClosingCountResponse, error)
	Delete(ctx context.Context, id string) error
}

type closingCountService struct {
	resource[model.ClosingCount, dto.CountFilter, dto.ClosingCountResponse]
}

func NewClosingCountService(repo repository.ClosingCountRepository) ClosingCountService {
	return &closingCountService{resource[model.ClosingCount, dto.CountFilter, dto.ClosingCountResponse]{
		repo: repo,
		view: mapClosingCount,
	}}
}

func mapClosingCount(c *model.ClosingCount) dto.ClosingCountResponse {
	return dto.ClosingCountResponse{
		ID:              c.ID,
		RegisterID:      c.RegisterID,
		StoreID:         c.StoreID,
		Amount:          c.Amount,
		SafeAmount:      c.SafeAmount,
		SalesCash:       c.SalesCash,
		SalesCard:       c.SalesCard,
		CustomerCount:   c.CustomerCount,
		TotalDifference: c.TotalDifference,
		Date:            c.Date,
		UserID:          c.UserID,
		UserName:        c.UserName,
		Timestamp:       c.Timestamp,
	}
}

func applyClosingCount(c *model.ClosingCount, req dto.ClosingCountRequest) {
	c.RegisterID = req.RegisterID
	c.StoreID = req.StoreID
	c.Amount = req.Amount
	c.SafeAmount = decimalOr(req.SafeAmount)
	c.SalesCash = decimalOr(req.SalesCash)
	c.SalesCard = decimalOr(req.SalesCard)
	c.CustomerCount = intOr(req.CustomerCount)
	c.TotalDifference = decimalOr(req.TotalDifference)
	c.Date = req.Date
	c.UserID = req.UserID
	c.UserName = req.UserName
}

func (s *closingCountService) Create(ctx context.Context, req dto.ClosingCountRequest) (dto.ClosingCountResponse, error) {
	var c model.ClosingCount
	applyClosingCount(&c, req)
	return s.create(ctx, &c)
}

func (s *closingCountService) Get(ctx context.Context, id string) (dto.ClosingCountResponse, error) {
	return s.get(ctx, id)
}

func (s *closingCountService) List(ctx context.Context, filter dto.CountFilter) ([]dto.ClosingCountResponse, error) {
	return s.list(ctx, filter)
}

func (s *closingCountService) Update(ctx context.Context, id string, req dto.ClosingCountRequest) (dto.ClosingCountResponse, error) {
	return s.replace(ctx, id, func(c *model.ClosingCount) { applyClosingCount(c, req) })
}

func (s *closingCountService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
