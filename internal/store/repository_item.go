// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// Static statements live in sql_queries.go; the listing and the partial
// update are rendered with squirrel.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
	psql   sq.StatementBuilderType
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ItemID, &item.Name, &item.Description, &item.Category, &item.Quantity, &item.Price)
	return item, err
}

func (r *itemRepository) CreateItem(ctx context.Context, create models.ItemCreate) (models.Item, error) {
	log := logger.FromContext(ctx)

	var created models.Item
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, itemExists, create.Name).Scan(&exists); err != nil {
			return r.db.wrapError(ErrExecutingQuery, err)
		}
		if exists {
			return ErrItemAlreadyExists
		}

		item, err := scanItem(tx.QueryRowContext(ctx, createItem,
			create.Name, create.Description, create.Category, create.Quantity, create.Price))
		if err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrItemAlreadyExists
			}
			return r.db.wrapError(ErrExecutingQuery, err)
		}
		created = item

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrItemAlreadyExists) {
			log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error creating item")
		}
		return models.Item{}, err
	}

	return created, nil
}

func (r *itemRepository) GetItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx, getItem, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.GetItem").Msg("error getting item")
		return models.Item{}, r.db.wrapError(ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, req models.ListItemsRequest) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.psql.
		Select(itemColumns...).
		From(models.Item{}.TableName()).
		OrderBy("id").
		Limit(req.Limit).
		Offset(req.Offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error listing items")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, req.Limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error iterating items")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return items, nil
}

// UpdateItem renders "UPDATE items SET ... WHERE id = $n RETURNING ..." with
// only the provided columns.
func (r *itemRepository) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	if update.IsEmpty() {
		return r.GetItem(ctx, id)
	}

	query, args, err := r.buildUpdateQuery(id, update)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Item{}, ErrItemNotFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			return models.Item{}, ErrItemAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.UpdateItem").Msg("error updating item")
		return models.Item{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *itemRepository) buildUpdateQuery(id int64, update models.ItemUpdate) (string, []any, error) {
	builder := r.psql.Update(models.Item{}.TableName())

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx, deleteItem, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.DeleteItem").Msg("error deleting item")
		return models.Item{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return item, nil
}
