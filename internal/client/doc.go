// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the item-keeper command-line client.
//
// Each invocation runs one command (register, login, list, get, create,
// update, delete or health) against the server through [adapter.ServerAdapter]
// and prints the JSON result.
package client
