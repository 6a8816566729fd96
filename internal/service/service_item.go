// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/store"
	"github.com/MKhiriev/item-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

// NewItemService constructs an ItemService backed by itemRepository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) Create(ctx context.Context, item models.ItemCreate) (models.Item, error) {
	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, mapStoreError("item creation ended with error", err)
	}

	logger.FromContext(ctx).Info().Int64("item_id", created.ItemID).Msg("item created")
	return created, nil
}

func (s *itemService) Get(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.GetItem(ctx, id)
	if err != nil {
		return models.Item{}, mapStoreError("item search ended with error", err)
	}

	return item, nil
}

func (s *itemService) List(ctx context.Context, request models.ListItemsRequest) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx, request)
	if err != nil {
		return nil, mapStoreError("item listing ended with error", err)
	}

	if len(items) == 0 {
		return nil, ErrItemsNotFound
	}

	return items, nil
}

func (s *itemService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	item, err := s.itemRepository.UpdateItem(ctx, id, update)
	if err != nil {
		return models.Item{}, mapStoreError("item update ended with error", err)
	}

	logger.FromContext(ctx).Info().Int64("item_id", id).Msg("item updated")
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.DeleteItem(ctx, id)
	if err != nil {
		return models.Item{}, mapStoreError("item deletion ended with error", err)
	}

	logger.FromContext(ctx).Info().Int64("item_id", id).Msg("item deleted")
	return item, nil
}
