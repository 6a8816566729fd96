// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "time"

// Test-only exports for the external service_test package, which cannot be
// internal because internal/mock imports this package.

type AccountServiceImpl = accountService

const DummyPassword = dummyPassword

func (a *accountService) DummyHash() string { return a.dummyHash }

func (a *accountService) TokenTTL() time.Duration { return a.tokenTTL }
