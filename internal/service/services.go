// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/item-keeper/internal/config"
	"github.com/MKhiriev/item-keeper/internal/crypto"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/store"
)

type Services struct {
	AccountService AccountService
	ItemService    ItemService
}

// NewServices builds the services over storages, each wrapped with its
// validation layer.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, codec crypto.TokenCodec, cfg config.App, logger *logger.Logger) *Services {
	accountService := NewAccountService(storages.AccountRepository, hasher, codec, cfg, logger)
	itemService := NewItemService(storages.ItemRepository, logger)

	return &Services{
		AccountService: NewAccountValidationService().Wrap(accountService),
		ItemService:    NewItemValidationService().Wrap(itemService),
	}
}
