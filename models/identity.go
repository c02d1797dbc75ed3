// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the resolved caller of an authenticated request.
//
// It is passed by value into services. SubjectID is compared against the
// OwnerID of tasks and notes to decide whether the caller may see or change
// them.
type Identity struct {
	SubjectID string
	Email     string
	Roles     map[RoleName]struct{}
}

// NewIdentity builds an [Identity] for the given user, copying role names
// into a set.
func NewIdentity(user User) Identity {
	roles := make(map[RoleName]struct{}, len(user.Roles))
	for _, role := range user.Roles {
		roles[role.Name] = struct{}{}
	}

	return Identity{
		SubjectID: user.SubjectID,
		Email:     user.Email,
		Roles:     roles,
	}
}

// Owns reports whether a record with the given owner subject id belongs to
// this identity. An empty subject id never owns anything.
func (i Identity) Owns(ownerID string) bool {
	return i.SubjectID != "" && i.SubjectID == ownerID
}

// HasRole reports whether the identity carries the named role.
func (i Identity) HasRole(name RoleName) bool {
	_, ok := i.Roles[name]
	return ok
}

// IsZero reports whether the identity is unresolved.
func (i Identity) IsZero() bool {
	return i.SubjectID == ""
}
