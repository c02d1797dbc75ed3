// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	userColumns = []string{"id", "email", "password", "active", "confirmed_at", "subject_id", "created_at"}
	roleColumns = []string{"id", "name", "description"}
	taskColumns = []string{"id", "title", "completed", "user_id"}
	noteColumns = []string{"id", "content", "user_id"}
)

func toSQL(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(user.TableName()).
		Columns("email", "password", "active", "confirmed_at", "subject_id", "created_at").
		Values(user.Email, user.Password, user.Active, user.ConfirmedAt, user.SubjectID, user.CreatedAt).
		Suffix("RETURNING id"))
}

func buildSelectUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1))
}

// roles

func buildInsertRoleQuery(b sq.StatementBuilderType, role models.Role) (string, []any, error) {
	return toSQL(b.Insert(role.TableName()).
		Columns("name", "description").
		Values(role.Name, role.Description).
		Suffix("RETURNING id"))
}

func buildSelectRoleByNameQuery(b sq.StatementBuilderType, name models.RoleName) (string, []any, error) {
	return toSQL(b.Select(roleColumns...).
		From(models.Role{}.TableName()).
		Where(sq.Eq{"name": name}).
		Limit(1))
}

func buildInsertRoleUserQuery(b sq.StatementBuilderType, userID, roleID int64) (string, []any, error) {
	return toSQL(b.Insert("roles_users").
		Columns("user_id", "role_id").
		Values(userID, roleID))
}

func buildSelectUserRolesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Select("r.id", "r.name", "r.description").
		From("roles r").
		Join("roles_users ru ON ru.role_id = r.id").
		Where(sq.Eq{"ru.user_id": userID}).
		OrderBy("r.id"))
}

// tasks

func buildSelectTasksQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return toSQL(b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id"))
}

func buildSelectTaskQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": id}))
}

func buildInsertTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	return toSQL(b.Insert(task.TableName()).
		Columns("title", "completed", "user_id").
		Values(task.Title, task.Completed, task.OwnerID).
		Suffix("RETURNING id"))
}

func buildUpdateTaskCompletedQuery(b sq.StatementBuilderType, id int64, ownerID string, completed bool) (string, []any, error) {
	return toSQL(b.Update(models.Task{}.TableName()).
		Set("completed", completed).
		Where(sq.Eq{"id": id, "user_id": ownerID}))
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, id int64, ownerID string) (string, []any, error) {
	return toSQL(b.Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": ownerID}))
}

// notes

func buildSelectNotesQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	return toSQL(b.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id"))
}

func buildSelectNoteQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"id": id}))
}

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	return toSQL(b.Insert(note.TableName()).
		Columns("content", "user_id").
		Values(note.Content, note.OwnerID).
		Suffix("RETURNING id"))
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, id int64, ownerID string) (string, []any, error) {
	return toSQL(b.Delete(models.Note{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": ownerID}))
}
