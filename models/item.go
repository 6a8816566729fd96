// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is a single inventory record.
type Item struct {
	ItemID      int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemCreate carries the fields of a new item.
type ItemCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ItemUpdate represents a partial update of an item.
// Only non-nil fields are written.
type ItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Description == nil &&
		u.Category == nil &&
		u.Quantity == nil &&
		u.Price == nil
}

// DefaultListLimit is the page size used when a listing does not set one.
const DefaultListLimit = 100

// ListItemsRequest is a page request for the item listing.
type ListItemsRequest struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}
