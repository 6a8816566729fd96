// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account represents a registered user of the service.
// HashedPassword is a bcrypt digest; the plaintext password is never stored.
type Account struct {
	// AccountID is the system-assigned identifier. Immutable.
	AccountID int64 `json:"id"`

	// Name is the unique login name.
	Name string `json:"name"`

	// Email is the unique email address. It can be used for login instead of Name.
	Email string `json:"email"`

	// HashedPassword is excluded from JSON so that it can never leak through a response or a log entry.
	HashedPassword string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "users"
}

// Summary returns the public view of the account.
func (a Account) Summary() AccountSummary {
	return AccountSummary{
		Name:  a.Name,
		Email: a.Email,
	}
}

// AccountSummary is what registration returns to the caller.
type AccountSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
