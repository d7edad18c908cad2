package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/Astemirdum/shareit/shareit/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var fieldValidator = validator.New()

func (s *Service) CreateUser(ctx context.Context, in model.CreateUser) (model.User, error) {
	user := model.User{Name: in.Name, Email: in.Email}
	if err := checkUser(user); err != nil {
		return model.User{}, err
	}
	return s.repo.CreateUser(ctx, user)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	var updated model.User
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		user, err := repo.GetUser(ctx, id)
		if err != nil {
			return errors.Wrapf(err, "user %d", id)
		}
		user = patch.Apply(user)
		if err = checkUser(user); err != nil {
			return err
		}
		updated, err = repo.UpdateUser(ctx, user)
		return err
	})
	return updated, err
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, errors.Wrapf(err, "user %d", id)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return errors.Wrapf(err, "user %d", id)
	}
	return nil
}

func checkUser(u model.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.Wrap(errs.ErrInvalidRequest, "name must not be blank")
	}
	if err := fieldValidator.Var(u.Email, "required,email"); err != nil {
		return errors.Wrapf(errs.ErrInvalidRequest, "email %q is invalid", u.Email)
	}
	return nil
}
