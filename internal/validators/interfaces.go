// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks task, note, role and credential input before it
// reaches the store.
//
// Services pass the value together with the names of the fields they care
// about, so adding a task validates the title and owner while a note only
// needs its content.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates a models value, restricted to the named fields.
// An unknown value type or field name is an error.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
