// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaskTitleMaxLength is the maximum number of characters in a task title.
const TaskTitleMaxLength = 100

// Task is a single to-do item owned by one user.
type Task struct {
	ID        int64  `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Completed bool   `db:"completed" json:"completed"`

	// OwnerID is the subject id of the user who created the task.
	OwnerID string `db:"user_id" json:"-"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskList is a user's tasks split by completion state.
type TaskList struct {
	Incomplete []Task
	Completed  []Task
}

// PartitionTasks splits tasks into incomplete and completed subsets.
// The relative order of tasks inside each subset is preserved.
func PartitionTasks(tasks []Task) TaskList {
	list := TaskList{
		Incomplete: make([]Task, 0, len(tasks)),
		Completed:  make([]Task, 0, len(tasks)),
	}

	for _, task := range tasks {
		if task.Completed {
			list.Completed = append(list.Completed, task)
		} else {
			list.Incomplete = append(list.Incomplete, task)
		}
	}

	return list
}
