// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// item-keeper HTTP handlers and its Go client.
//
// All Msg* constants are the "detail" strings written into JSON error
// bodies. Keeping them in one place keeps the wording consistent between the
// server and the code that reads its responses.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidForm is returned when a form-encoded body cannot be parsed.
	MsgInvalidForm = "invalid form was passed"

	// MsgAccountAlreadyExists is returned when the name or the email of a new
	// account is already registered.
	MsgAccountAlreadyExists = "Account with this name or email already exists"

	// MsgItemAlreadyExists is returned when an item name is already taken.
	MsgItemAlreadyExists = "Item already exists"

	// MsgInvalidCredentials is returned for an unknown user and for a wrong
	// password alike.
	MsgInvalidCredentials = "Incorrect email or password"

	// MsgUnauthenticated is the only body the bearer gate ever returns.
	MsgUnauthenticated = "unauthenticated"

	MsgItemNotFound  = "Item not found"
	MsgItemsNotFound = "Items not found"

	// MsgServiceUnavailable is returned when the database cannot be reached.
	MsgServiceUnavailable = "Service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)
