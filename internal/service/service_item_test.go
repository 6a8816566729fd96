// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/mock"
	"github.com/MKhiriev/item-keeper/internal/service"
	"github.com/MKhiriev/item-keeper/internal/store"
	"github.com/MKhiriev/item-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItemSvc(t *testing.T) (service.ItemService, *mock.MockItemRepository) {
	t.Helper()
	repo := mock.NewMockItemRepository(gomock.NewController(t))
	return service.NewItemService(repo, logger.Nop()), repo
}

var testItem = models.Item{
	ItemID:      1,
	Name:        "Widget",
	Description: "blue",
	Category:    "tools",
	Quantity:    3,
	Price:       9.5,
}

func TestItemService_Create(t *testing.T) {
	svc, repo := newTestItemSvc(t)
	ctx := context.Background()
	create := models.ItemCreate{Name: "Widget", Description: "blue", Category: "tools", Quantity: 3, Price: 9.5}

	repo.EXPECT().CreateItem(ctx, create).Return(testItem, nil)

	got, err := svc.Create(ctx, create)

	require.NoError(t, err)
	assert.Equal(t, testItem, got)
}

func TestItemService_Create_Duplicate(t *testing.T) {
	svc, repo := newTestItemSvc(t)

	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
		Return(models.Item{}, fmt.Errorf("%w: %w", store.ErrItemAlreadyExists, errors.New("items_name_key")))

	_, err := svc.Create(context.Background(), models.ItemCreate{Name: "Widget", Category: "tools"})

	require.ErrorIs(t, err, service.ErrItemAlreadyExists)
}

func TestItemService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(1)).Return(testItem, nil)

		got, err := svc.Get(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, testItem, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().GetItem(gomock.Any(), int64(42)).Return(models.Item{}, store.ErrItemNotFound)

		_, err := svc.Get(context.Background(), 42)

		require.ErrorIs(t, err, service.ErrItemNotFound)
	})

	t.Run("unknown store error is wrapped", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		boom := errors.New("boom")
		repo.EXPECT().GetItem(gomock.Any(), int64(1)).Return(models.Item{}, boom)

		_, err := svc.Get(context.Background(), 1)

		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "item search ended with error")
	})
}

func TestItemService_List(t *testing.T) {
	req := models.ListItemsRequest{Limit: 10, Offset: 20}

	t.Run("page", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().ListItems(gomock.Any(), req).Return([]models.Item{testItem}, nil)

		got, err := svc.List(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []models.Item{testItem}, got)
	})

	t.Run("empty page", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().ListItems(gomock.Any(), req).Return([]models.Item{}, nil)

		got, err := svc.List(context.Background(), req)

		require.ErrorIs(t, err, service.ErrItemsNotFound)
		assert.Nil(t, got)
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().ListItems(gomock.Any(), req).Return(nil, store.ErrStoreUnavailable)

		_, err := svc.List(context.Background(), req)

		require.ErrorIs(t, err, service.ErrStoreUnavailable)
	})
}

func TestItemService_Update(t *testing.T) {
	name := "Gadget"
	update := models.ItemUpdate{Name: &name}

	t.Run("updated", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		updated := testItem
		updated.Name = name
		repo.EXPECT().UpdateItem(gomock.Any(), int64(1), update).Return(updated, nil)

		got, err := svc.Update(context.Background(), 1, update)

		require.NoError(t, err)
		assert.Equal(t, "Gadget", got.Name)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().UpdateItem(gomock.Any(), int64(1), update).Return(models.Item{}, store.ErrItemAlreadyExists)

		_, err := svc.Update(context.Background(), 1, update)

		require.ErrorIs(t, err, service.ErrItemAlreadyExists)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().UpdateItem(gomock.Any(), int64(9), update).Return(models.Item{}, store.ErrItemNotFound)

		_, err := svc.Update(context.Background(), 9, update)

		require.ErrorIs(t, err, service.ErrItemNotFound)
	})
}

func TestItemService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().DeleteItem(gomock.Any(), int64(1)).Return(testItem, nil)

		got, err := svc.Delete(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, testItem, got)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := newTestItemSvc(t)
		repo.EXPECT().DeleteItem(gomock.Any(), int64(1)).Return(models.Item{}, store.ErrItemNotFound)

		_, err := svc.Delete(context.Background(), 1)

		require.ErrorIs(t, err, service.ErrItemNotFound)
	})
}
