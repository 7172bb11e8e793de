package domain

import "time"

type TaskPriority string

const (
	PriorityP0 TaskPriority = "P0"
	PriorityP1 TaskPriority = "P1"
	PriorityP2 TaskPriority = "P2"
	PriorityP3 TaskPriority = "P3"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
	TaskCancelled  TaskStatus = "CANCELLED"
)

type Task struct {
	ID        string
	FounderID string
	Title     string
	Priority  TaskPriority
	Status    TaskStatus
	DueDate   *time.Time
	Context   string
	CreatedAt time.Time
}
