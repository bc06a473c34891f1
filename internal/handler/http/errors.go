// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. They are logged,
// never sent to the client.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoIdentity is returned when a protected handler runs without an
	// identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")

	// ErrAdminRoleRequired is returned by the admin gate for non-admin callers.
	ErrAdminRoleRequired = errors.New("admin role required")
)
