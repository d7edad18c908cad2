package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) CreateRequest(ctx context.Context, userID int64, in model.CreateItemRequest) (model.ItemRequestView, error) {
	if strings.TrimSpace(in.Description) == "" {
		return model.ItemRequestView{}, errors.Wrap(errs.ErrInvalidRequest, "description must not be blank")
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return model.ItemRequestView{}, errors.Wrapf(err, "user %d", userID)
	}
	created, err := s.repo.CreateRequest(ctx, model.ItemRequest{
		Description: in.Description,
		RequestorID: userID,
		Created:     s.now(),
	})
	if err != nil {
		return model.ItemRequestView{}, err
	}
	return model.NewItemRequestView(created, nil), nil
}

func (s *Service) ListOwnRequests(ctx context.Context, userID int64) ([]model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, errors.Wrapf(err, "user %d", userID)
	}
	requests, err := s.repo.ListUserRequests(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *Service) ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, errors.Wrapf(err, "user %d", userID)
	}
	requests, err := s.repo.ListOtherRequests(ctx, userID, page)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, requests)
}

func (s *Service) GetRequest(ctx context.Context, userID, requestID int64) (model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return model.ItemRequestView{}, errors.Wrapf(err, "user %d", userID)
	}
	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.ItemRequestView{}, errors.Wrapf(err, "request %d", requestID)
	}
	views, err := s.withItems(ctx, []model.ItemRequest{request})
	if err != nil {
		return model.ItemRequestView{}, err
	}
	return views[0], nil
}

// withItems attaches the items offered for each request with one lookup.
func (s *Service) withItems(ctx context.Context, requests []model.ItemRequest) ([]model.ItemRequestView, error) {
	views := make([]model.ItemRequestView, 0, len(requests))
	if len(requests) == 0 {
		return views, nil
	}
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	items, err := s.repo.ListItemsByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]model.RequestItem, len(requests))
	for _, it := range items {
		byRequest[it.RequestID] = append(byRequest[it.RequestID], it)
	}
	for _, r := range requests {
		views = append(views, model.NewItemRequestView(r, byRequest[r.ID]))
	}
	return views, nil
}
