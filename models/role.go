// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Length limits of role attributes.
const (
	RoleNameMaxLength        = 32
	RoleDescriptionMaxLength = 128
)

// RoleName is the unique label of a [Role].
type RoleName string

// Role is an authorization label that can be assigned to users.
// Roles are stored and loaded into the request identity, but no route
// currently checks them.
type Role struct {
	ID          int64    `db:"id" json:"id"`
	Name        RoleName `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}
