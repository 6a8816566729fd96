// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/item-keeper/internal/store"
)

// storeErrorMap translates repository sentinels into service sentinels so
// store errors never reach the transport layer.
var storeErrorMap = []struct {
	from error
	to   error
}{
	{store.ErrAccountAlreadyExists, ErrAccountAlreadyExists},
	{store.ErrItemAlreadyExists, ErrItemAlreadyExists},
	{store.ErrItemNotFound, ErrItemNotFound},
	{store.ErrStoreUnavailable, ErrStoreUnavailable},
}

// mapStoreError returns the service sentinel for err, keeping err in the
// chain for logging. Unknown errors are wrapped with msg.
func mapStoreError(msg string, err error) error {
	for _, m := range storeErrorMap {
		if errors.Is(err, m.from) {
			return fmt.Errorf("%w: %w", m.to, err)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
