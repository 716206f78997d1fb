// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input against business rules before it
// reaches the field codec and the repositories.
//
// A [Validator] takes any supported model and an optional list of field
// names. With no fields, the model's default rule set is applied; with
// fields, only the named rules run, which lets partial updates be checked
// without tripping over fields the caller did not send.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
