// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sofia Onell

// Package validators enforces the field-level rules of gig-desk's
// domain objects (users, orders, catalog services) behind a single
// generic interface, keeping validation out of the transport and
// storage layers.
//
// A validator accepts the whole object plus an optional list of field
// names; with no fields given it applies the object's default rule set.
// Violations are reported through the package's sentinel errors so
// services can wrap them uniformly.
package validators

import "context"

// Validator validates an arbitrary value, optionally scoped to the
// named fields only.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
