// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account and item payloads before they reach
// the services' business logic.
//
// A validator inspects one of the request models and reports the first
// broken rule as an error wrapping one of the sentinels in errors.go. The
// optional field names restrict the check to those fields, which the item
// update path uses to validate only the fields a client sent.
package validators

import "context"

// Validator validates a request model, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
