// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ownershipGuard records mutations that were skipped because the record
// belongs to another user. The caller still reports success.
type ownershipGuard struct {
	metrics metrics.MetricsCollector
}

// permits reports whether identity may mutate a record owned by ownerID.
// On mismatch it logs a warning and counts the skip.
func (g ownershipGuard) permits(ctx context.Context, identity models.Identity, ownerID, resource, action string, id int64) bool {
	if identity.Owns(ownerID) {
		return true
	}

	logger.FromContext(ctx).Warn().
		Str("resource", resource).
		Str("action", action).
		Int64("id", id).
		Str("subject_id", identity.SubjectID).
		Msg("ownership mismatch, mutation skipped")
	g.metrics.RecordOwnershipSkip(resource, action)

	return false
}
