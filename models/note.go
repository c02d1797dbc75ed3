// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a free text entry owned by one user.
// Notes have no update operation: they are created and deleted only.
type Note struct {
	ID      int64  `db:"id" json:"id"`
	Content string `db:"content" json:"content"`

	// OwnerID is the subject id of the user who created the note.
	OwnerID string `db:"user_id" json:"-"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
