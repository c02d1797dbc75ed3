// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectTasksQuery(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres placeholders",
			builder: dollar,
			want:    "SELECT id, title, completed, user_id FROM tasks WHERE user_id = $1 ORDER BY id",
		},
		{
			name:    "sqlite placeholders",
			builder: question,
			want:    "SELECT id, title, completed, user_id FROM tasks WHERE user_id = ? ORDER BY id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectTasksQuery(tt.builder, "sub-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"sub-1"}, args)
		})
	}
}

func Test_buildUpdateTaskCompletedQuery_GuardsIDAndOwner(t *testing.T) {
	query, args, err := buildUpdateTaskCompletedQuery(dollar, 7, "sub-1", true)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE tasks SET completed = $1 WHERE id = $2 AND user_id = $3", query)
	assert.Equal(t, []any{true, int64(7), "sub-1"}, args)
}

func Test_buildDeleteQueries_GuardIDAndOwner(t *testing.T) {
	query, args, err := buildDeleteTaskQuery(question, 3, "sub-2")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM tasks WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{int64(3), "sub-2"}, args)

	query, args, err = buildDeleteNoteQuery(question, 4, "sub-2")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{int64(4), "sub-2"}, args)
}

func Test_buildInsertQueries_ReturnID(t *testing.T) {
	query, args, err := buildInsertTaskQuery(dollar, models.Task{Title: "milk", OwnerID: "sub"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tasks (title,completed,user_id) VALUES ($1,$2,$3) RETURNING id", query)
	assert.Equal(t, []any{"milk", false, "sub"}, args)

	query, _, err = buildInsertNoteQuery(question, models.Note{Content: "c", OwnerID: "sub"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO notes (content,user_id) VALUES (?,?) RETURNING id", query)

	query, _, err = buildInsertUserQuery(dollar, models.User{})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO users (email,password,active,confirmed_at,subject_id,created_at)")
	assert.Contains(t, query, "RETURNING id")
}

func Test_buildSelectUserRolesQuery(t *testing.T) {
	query, args, err := buildSelectUserRolesQuery(dollar, 9)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT r.id, r.name, r.description FROM roles r JOIN roles_users ru ON ru.role_id = r.id WHERE ru.user_id = $1 ORDER BY r.id",
		query)
	assert.Equal(t, []any{int64(9)}, args)
}

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(question, "email", "a@b.c")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, email, password, active, confirmed_at, subject_id, created_at FROM users WHERE email = ? LIMIT 1",
		query)
	assert.Equal(t, []any{"a@b.c"}, args)
}
