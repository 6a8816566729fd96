// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	accountExists = `SELECT EXISTS (
		SELECT 1 FROM users WHERE name = $1 OR email = $2
	);`

	createAccount = `INSERT INTO users (name, email, hashed_password)
		VALUES ($1, $2, $3)
		RETURNING id;`

	findAccountByNameOrEmail = `SELECT id, name, email, hashed_password
		FROM users
		WHERE name = $1 OR email = $1
		ORDER BY CASE WHEN name = $1 THEN 0 ELSE 1 END
		LIMIT 1;`

	itemExists = `SELECT EXISTS (
		SELECT 1 FROM items WHERE name = $1
	);`

	createItem = `INSERT INTO items (name, description, category, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, category, quantity, price;`

	getItem = `SELECT id, name, description, category, quantity, price
		FROM items
		WHERE id = $1;`

	deleteItem = `DELETE FROM items
		WHERE id = $1
		RETURNING id, name, description, category, quantity, price;`
)

var itemColumns = []string{"id", "name", "description", "category", "quantity", "price"}
