// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the item-keeper configuration.
//
// The server configuration is merged from several sources; the first source
// that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Use [GetStructuredConfig] for the server and [GetClientConfig] for the
// command-line client, which reads ITEM_KEEPER_ environment variables only.
package config
