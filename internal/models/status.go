package models

import "fmt"

// Status is the workflow state of a task
type Status string

// Task statuses
const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// DefaultStatus is used when a request does not name a status
const DefaultStatus = StatusTodo

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus converts a string into a Status, rejecting unknown values
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", Invalid(fmt.Sprintf("unknown status %q (expected TODO, IN_PROGRESS or DONE)", s))
	}
	return status, nil
}

// Priority is the urgency of a task
type Priority string

// Task priorities
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// DefaultPriority is used when a request does not name a priority
const DefaultPriority = PriorityMedium

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts a string into a Priority, rejecting unknown values
func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if !priority.Valid() {
		return "", Invalid(fmt.Sprintf("unknown priority %q (expected LOW, MEDIUM or HIGH)", s))
	}
	return priority, nil
}
