package service

import (
	"context"

	"gestorcash/internal/dto"
	"gestorcash/internal/model"
	"gestorcash/internal/repository"
)

// StoreService manages stores. Delete deactivates.
type StoreService interface {
	Create(ctx context.Context, req dto.CreateStoreRequest) (dto.StoreResponse, error)
	Get(ctx context.Context, id string) (dto.StoreResponse, error)
	List(ctx context.Context, filter dto.StoreFilter) ([]dto.StoreResponse, error)
	Update(ctx context.Context, id string, req dto.StoreRequest) (dto.StoreResponse, error)
	Delete(ctx context.Context, id string) error
}

type storeService struct {
	resource[model.Store, dto.StoreFilter, dto.StoreResponse]
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{resource[model.Store, dto.StoreFilter, dto.StoreResponse]{
		repo: repo,
		view: func(st *model.Store) dto.StoreResponse {
			return dto.StoreResponse{ID: st.ID, Name: st.Name, Code: st.Code, Active: st.Active}
		},
	}}
}

func applyStore(st *model.Store, req dto.StoreRequest) {
	st.Name = req.Name
	st.Code = req.Code
	st.Active = boolOr(req.Active, true)
}

func (s *storeService) Create(ctx context.Context, req dto.CreateStoreRequest) (dto.StoreResponse, error) {
	st := model.Store{ID: req.ID}
	applyStore(&st, req.StoreRequest)
	return s.create(ctx, &st)
}

func (s *storeService) Get(ctx context.Context, id string) (dto.StoreResponse, error) {
	return s.get(ctx, id)
}

func (s *storeService) List(ctx context.Context, filter dto.StoreFilter) ([]dto.StoreResponse, error) {
	return s.list(ctx, filter)
}

func (s *storeService) Update(ctx context.Context, id string, req dto.StoreRequest) (dto.StoreResponse, error) {
	return s.replace(ctx, id, func(st *model.Store) { applyStore(st, req) })
}

func (s *storeService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}

// CashRegisterService manages tills. Delete deactivates.
type CashRegisterService interface {
	Create(ctx context.Context, req dto.CreateCashRegisterRequest) (dto.CashRegisterResponse, error)
	Get(ctx context.Context, id string) (dto.CashRegisterResponse, error)
	List(ctx context.Context, filter dto.CashRegisterFilter) ([]dto.CashRegisterResponse, error)
	Update(ctx context.Context, id string, req dto.CashRegisterRequest) (dto.CashRegisterResponse, error)
	Delete(ctx context.Context, id string) error
}

type cashRegisterService struct {
	resource[model.CashRegister, dto.CashRegisterFilter, dto.CashRegisterResponse]
}

func NewCashRegisterService(repo repository.CashRegisterRepository) CashRegisterService {
	return &cashRegisterService{resource[model.CashRegister, dto.CashRegisterFilter, dto.CashRegisterResponse]{
		repo: repo,
		view: func(r *model.CashRegister) dto.CashRegisterResponse {
			return dto.CashRegisterResponse{ID: r.ID, StoreID: r.StoreID, Number: r.Number, Active: r.Active}
		},
	}}
}

func applyCashRegister(r *model.CashRegister, req dto.CashRegisterRequest) {
	r.StoreID = req.StoreID
	r.Number = req.Number
	r.Active = boolOr(req.Active, true)
}

func (s *cashRegisterService) Create(ctx context.Context, req dto.CreateCashRegisterRequest) (dto.CashRegisterResponse, error) {
	r := model.CashRegister{ID: req.ID}
	applyCashRegister(&r, req.CashRegisterRequest)
	return s.create(ctx, &r)
}

func (s *cashRegisterService) Get(ctx context.Context, id string) (dto.CashRegisterResponse, error) {
	return s.get(ctx, id)
}

func (s *cashRegisterService) List(ctx context.Context, filter dto.CashRegisterFilter) ([]dto.CashRegisterResponse, error) {
	return s.list(ctx, filter)
}

func (s *cashRegisterService) Update(ctx context.Context, id string, req dto.CashRegisterRequest) (dto.CashRegisterResponse, error) {
	return s.replace(ctx, id, func(r *model.CashRegister) { applyCashRegister(r, req) })
}

func (s *cashRegisterService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
