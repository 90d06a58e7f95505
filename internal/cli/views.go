package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/todolist/internal/cli/styles"
	"github.com/thenoetrevino/todolist/internal/models"
)

const timeFormat = "Jan 2, 2006 3:04 PM"

// TaskView is the CLI projection of a task
type TaskView struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     *time.Time    `json:"due_date"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority"`
	UpdatedAt   *time.Time    `json:"updated_at"`
	TaskList    *TaskListView `json:"task_list"`
	Labels      []LabelView   `json:"labels"`

	task *models.Task
}

// NewTaskView projects a domain task
func NewTaskView(t *models.Task) *TaskView {
	v := &TaskView{
		ID:          int(t.ID),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Labels:      make([]LabelView, 0, len(t.Labels)),
		task:        t,
	}
	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		v.UpdatedAt = &updated
	}
	if t.TaskList != nil {
		v.TaskList = NewTaskListView(t.TaskList)
	}
	for _, l := range t.Labels {
		v.Labels = append(v.Labels, *NewLabelView(l))
	}
	return v
}

func (v *TaskView) GetID() int { return v.ID }

// RenderHuman renders the task as a card with a markdown description
func (v *TaskView) RenderHuman() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", v.ID, v.Title)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s  %s %s\n",
		styles.FieldStyle.Render("Status:"), styles.RenderStatus(v.task.Status),
		styles.FieldStyle.Render("Priority:"), styles.RenderPriority(v.task.Priority),
	)
	if v.TaskList != nil {
		fmt.Fprintf(&b, "%s %s\n", styles.FieldStyle.Render("List:"), styles.ValueStyle.Render(v.TaskList.Name))
	}
	if v.DueDate != nil {
		fmt.Fprintf(&b, "%s %s\n", styles.FieldStyle.Render("Due:"), styles.ValueStyle.Render(v.DueDate.Format(timeFormat)))
	}
	if v.UpdatedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", styles.FieldStyle.Render("Updated:"), styles.SubtitleStyle.Render(v.UpdatedAt.Local().Format(timeFormat)))
	}

	if len(v.task.Labels) > 0 {
		b.WriteString(styles.SectionStyle.Render("Labels"))
		b.WriteString("\n  " + styles.RenderLabelChips(v.task.Labels) + "\n")
	}

	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.RenderMarkdown(v.Description, styles.CardWidth-8))

	return styles.RenderCard(b.String())
}

// TaskViews is a list result
type TaskViews []*TaskView

// NewTaskViews projects a slice of domain tasks
func NewTaskViews(tasks []*models.Task) TaskViews {
	out := make(TaskViews, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskView(t))
	}
	return out
}

func (vs TaskViews) IDs() []int {
	ids := make([]int, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}

// RenderHuman renders one line per task
func (vs TaskViews) RenderHuman() string {
	if len(vs) == 0 {
		return "No tasks found"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s %-12s %-7s %s\n", "ID", "Status", "Prio", "Title")
	b.WriteString("  " + strings.Repeat("-", 60))
	for _, v := range vs {
		fmt.Fprintf(&b, "\n  %-4d %-12s %-7s %s", v.ID, v.Status, v.Priority, v.Title)
		if len(v.task.Labels) > 0 {
			b.WriteString(" " + styles.RenderLabelChips(v.task.Labels))
		}
	}
	return b.String()
}

// LabelView is the CLI projection of a label
type LabelView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewLabelView projects a domain label
func NewLabelView(l *models.Label) *LabelView {
	return &LabelView{ID: int(l.ID), Name: l.Name, Color: l.Color}
}

func (v *LabelView) GetID() int { return v.ID }

func (v *LabelView) RenderHuman() string {
	return fmt.Sprintf("%s Label %s created (ID: %d, color %s)",
		styles.SuccessStyle.Render("✓"),
		styles.RenderLabelChip(&models.Label{Name: v.Name, Color: v.Color}),
		v.ID, v.Color)
}

// LabelViews is a list result
type LabelViews []*LabelView

// NewLabelViews projects a slice of domain labels
func NewLabelViews(labels []*models.Label) LabelViews {
	out := make(LabelViews, 0, len(labels))
	for _, l := range labels {
		out = append(out, NewLabelView(l))
	}
	return out
}

func (vs LabelViews) IDs() []int {
	ids := make([]int, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}

func (vs LabelViews) RenderHuman() string {
	if len(vs) == 0 {
		return "No labels found"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s %-20s %s\n", "ID", "Name", "Color")
	b.WriteString("  " + strings.Repeat("-", 40))
	for _, v := range vs {
		fmt.Fprintf(&b, "\n  %-4d %-20s %s", v.ID, v.Name, styles.ColoredText(v.Color, v.Color))
	}
	return b.String()
}

// TaskListView is the CLI projection of a task list
type TaskListView struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTaskListView projects a domain task list
func NewTaskListView(l *models.TaskList) *TaskListView {
	return &TaskListView{ID: int(l.ID), Name: l.Name, CreatedAt: l.CreatedAt}
}

func (v *TaskListView) GetID() int { return v.ID }

func (v *TaskListView) RenderHuman() string {
	return fmt.Sprintf("%s Task list '%s' (ID: %d)", styles.SuccessStyle.Render("✓"), v.Name, v.ID)
}

// TaskListViews is a list result
type TaskListViews []*TaskListView

// NewTaskListViews projects a slice of domain task lists
func NewTaskListViews(lists []*models.TaskList) TaskListViews {
	out := make(TaskListViews, 0, len(lists))
	for _, l := range lists {
		out = append(out, NewTaskListView(l))
	}
	return out
}

func (vs TaskListViews) IDs() []int {
	ids := make([]int, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}

func (vs TaskListViews) RenderHuman() string {
	if len(vs) == 0 {
		return "No task lists found"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s %s\n", "ID", "Name")
	b.WriteString("  " + strings.Repeat("-", 40))
	for _, v := range vs {
		fmt.Fprintf(&b, "\n  %-4d %s", v.ID, v.Name)
	}
	return b.String()
}

// Message is a plain confirmation result, such as after a delete
type Message struct {
	ID   int    `json:"id,omitempty"`
	Text string `json:"message"`
}

func (m *Message) GetID() int { return m.ID }

func (m *Message) RenderHuman() string {
	return styles.SuccessStyle.Render("✓") + " " + m.Text
}
