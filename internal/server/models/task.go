package models

import "time"

// Task is a titled to-do item owned by exactly one user. Every read and write
// is scoped by both task id and owner id; there is no cross-user access.
type Task struct {
	ID        int64
	UserID    int64
	Title     string
	IsDone    bool
	CreatedAt time.Time
}
