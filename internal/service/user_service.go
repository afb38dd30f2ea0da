package service

import (
	"context"

	"gestorcash/internal/dto"
	"gestorcash/internal/model"
	"gestorcash/internal/repository"
)

// UserService manages users keyed by their identity-provider uid.
// Delete deactivates.
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	Get(ctx context.Context, uid string) (dto.UserResponse, error)
	List(ctx context.Context, filter dto.UserFilter) ([]dto.UserResponse, error)
	Update(ctx context.Context, uid string, req dto.UserRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, uid string) error
}

type userService struct {
	resource[model.User, dto.UserFilter, dto.UserResponse]
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{resource[model.User, dto.UserFilter, dto.UserResponse]{
		repo: repo,
		view: mapUser,
	}}
}

func mapUser(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		StoreID:     u.StoreID,
		Active:      u.Active,
	}
}

func applyUser(u *model.User, req dto.UserRequest) {
	u.Email = req.Email
	u.DisplayName = req.DisplayName
	u.Role = req.Role
	u.StoreID = req.StoreID
	u.Active = boolOr(req.Active, true)
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	u := model.User{UID: req.UID}
	applyUser(&u, req.UserRequest)
	return s.create(ctx, &u)
}

func (s *userService) Get(ctx context.Context, uid string) (dto.UserResponse, error) {
	return s.get(ctx, uid)
}

func (s *userService) List(ctx context.Context, filter dto.UserFilter) ([]dto.UserResponse, error) {
	return s.list(ctx, filter)
}

func (s *userService) Update(ctx context.Context, uid string, req dto.UserRequest) (dto.UserResponse, error) {
	return s.replace(ctx, uid, func(u *model.User) { applyUser(u, req) })
}

func (s *userService) Delete(ctx context.Context, uid string) error {
	return s.remove(ctx, uid)
}
