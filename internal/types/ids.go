package types

// ID type aliases provide semantic meaning and reduce repetitive int conversions.
// They document what each integer represents in the domain model.

// TaskID identifies a unique task
type TaskID int

// LabelID identifies a unique label
type LabelID int

// TaskListID identifies a unique task list
type TaskListID int
