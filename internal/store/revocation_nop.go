// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"
)

// nopRevocationStore is used when no Redis is configured: nothing is ever
// revoked and logout only clears the client cookie.
type nopRevocationStore struct{}

func NewNopRevocationStore() SessionRevocationStore {
	return nopRevocationStore{}
}

func (nopRevocationStore) Revoke(context.Context, string, time.Time) error {
	return nil
}

func (nopRevocationStore) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
