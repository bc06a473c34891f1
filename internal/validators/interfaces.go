// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request DTOs before they
// reach the store.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Tag request structs with `validate:"..."` rules.
//  2. Inject a Validator into services.
//  3. Call Validate with context, value, and optional field names to enforce rules.
//
// Failures wrap one of the sentinel errors in errors.go so callers can pick a
// user-facing message with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
