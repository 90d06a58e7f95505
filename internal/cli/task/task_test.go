package task

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todolist/internal/cli"
	"github.com/thenoetrevino/todolist/internal/testutil"
)

// createTask runs task create --quiet and returns the new ID
func createTask(t *testing.T, c *cli.CLI, args ...string) int {
	t.Helper()
	res, err := testutil.ExecuteCommand(t, c, CreateCmd(), append(args, "--quiet")...)
	require.NoError(t, err, res.Stderr)
	id, err := strconv.Atoi(strings.TrimSpace(res.Stdout))
	require.NoError(t, err, res.Stdout)
	return id
}

func TestCreateTask_Positive(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	listID := testutil.CreateTestTaskList(t, db, "Home")
	testutil.CreateTestLabel(t, db, "urgent", "#FF0000")

	t.Run("title only", func(t *testing.T) {
		id := createTask(t, c, "--title", "Simple Task", "--list", strconv.Itoa(listID))

		var title, status, priority string
		err := db.QueryRowContext(context.Background(),
			"SELECT title, status, priority FROM tasks WHERE id = ?", id).Scan(&title, &status, &priority)
		require.NoError(t, err)
		assert.Equal(t, "Simple Task", title)
		assert.Equal(t, "TODO", status)
		assert.Equal(t, "MEDIUM", priority)
	})

	t.Run("all fields as JSON", func(t *testing.T) {
		res, err := testutil.ExecuteCommand(t, c, CreateCmd(),
			"--title", "Detailed Task",
			"--description", "Some *markdown*",
			"--due", "2025-04-15",
			"--status", "in-progress",
			"--priority", "high",
			"--labels", "urgent",
			"--list", strconv.Itoa(listID),
			"--json",
		)
		require.NoError(t, err)

		result := testutil.ParseJSON(t, res.Stdout)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Detailed Task", data["title"])
		assert.Equal(t, "IN_PROGRESS", data["status"])
		assert.Equal(t, "HIGH", data["priority"])
		assert.Equal(t, "2025-04-15T00:00:00Z", data["due_date"])
		assert.Equal(t, "Home", data["task_list"].(map[string]any)["name"])
		labels := data["labels"].([]any)
		require.Len(t, labels, 1)
		assert.Equal(t, "urgent", labels[0].(map[string]any)["name"])
	})
}

func TestCreateTask_Negative(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	listID := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Home"))
	createTask(t, c, "--title", "Buy milk", "--list", listID)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"duplicate title", []string{"--title", "Buy milk", "--list", listID}, cli.ExitConflict},
		{"missing list", []string{"--title", "x", "--list", "99"}, cli.ExitNotFound},
		{"unknown label", []string{"--title", "x", "--list", listID, "--labels", "nope"}, cli.ExitNotFound},
		{"bad status", []string{"--title", "x", "--list", listID, "--status", "later"}, cli.ExitValidation},
		{"bad due date", []string{"--title", "x", "--list", listID, "--due", "soon"}, cli.ExitDataErr},
		{"blank title", []string{"--title", "  ", "--list", listID}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := testutil.ExecuteCommand(t, c, CreateCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
			assert.Contains(t, res.Stderr, "Error:")
		})
	}

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestListTasks(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	home := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Home"))
	work := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Work"))
	testutil.CreateTestLabel(t, db, "urgent", "#FF0000")

	a := createTask(t, c, "--title", "Dishes", "--list", home)
	b := createTask(t, c, "--title", "Report", "--list", work, "--status", "done", "--labels", "urgent")

	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"all", nil, []int{a, b}},
		{"by list", []string{"--list", home}, []int{a}},
		{"by status", []string{"--status", "DONE"}, []int{b}},
		{"by label", []string{"--label", "urgent"}, []int{b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := testutil.ExecuteCommand(t, c, ListCmd(), append(tt.args, "--quiet")...)
			require.NoError(t, err)
			var got []int
			for _, line := range strings.Fields(res.Stdout) {
				id, err := strconv.Atoi(line)
				require.NoError(t, err)
				got = append(got, id)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	res, err := testutil.ExecuteCommand(t, c, ListCmd())
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Dishes")
	assert.Contains(t, res.Stdout, "Report")
}

func TestShowTask(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	list := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Home"))
	id := createTask(t, c, "--title", "Plan trip", "--list", list, "--description", "Book **flights**")

	res, err := testutil.ExecuteCommand(t, c, ShowCmd(), strconv.Itoa(id))
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Plan trip")
	assert.Contains(t, res.Stdout, "flights")

	res, err = testutil.ExecuteCommand(t, c, ShowCmd(), "999")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, res.Stderr, "task list")

	_, err = testutil.ExecuteCommand(t, c, ShowCmd(), "abc")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestUpdateTask(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	list := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Home"))
	testutil.CreateTestLabel(t, db, "urgent", "#FF0000")
	testutil.CreateTestLabel(t, db, "later", "#00FF00")
	id := createTask(t, c, "--title", "Buy milk", "--list", list,
		"--priority", "high", "--due", "2025-01-01", "--labels", "urgent")
	createTask(t, c, "--title", "Taken", "--list", list)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		res, err := testutil.ExecuteCommand(t, c, UpdateCmd(), strconv.Itoa(id), "--status", "done", "--json")
		require.NoError(t, err, res.Stderr)

		data := testutil.ParseJSON(t, res.Stdout)["data"].(map[string]any)
		assert.Equal(t, "Buy milk", data["title"])
		assert.Equal(t, "DONE", data["status"])
		assert.Equal(t, "HIGH", data["priority"])
		assert.NotNil(t, data["due_date"])
		assert.Len(t, data["labels"], 1)
	})

	t.Run("replace labels and clear due date", func(t *testing.T) {
		res, err := testutil.ExecuteCommand(t, c, UpdateCmd(), strconv.Itoa(id), "--labels", "later", "--clear-due", "--json")
		require.NoError(t, err, res.Stderr)

		data := testutil.ParseJSON(t, res.Stdout)["data"].(map[string]any)
		assert.Nil(t, data["due_date"])
		labels := data["labels"].([]any)
		require.Len(t, labels, 1)
		assert.Equal(t, "later", labels[0].(map[string]any)["name"])
	})

	t.Run("title collision", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, c, UpdateCmd(), strconv.Itoa(id), "--title", "Taken")
		assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := testutil.ExecuteCommand(t, c, UpdateCmd(), "999", "--status", "done")
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestDeleteTask(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	list := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Home"))
	id := strconv.Itoa(createTask(t, c, "--title", "Trash", "--list", list))

	res, err := testutil.ExecuteCommand(t, c, DeleteCmd(), id)
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "deleted")

	_, err = testutil.ExecuteCommand(t, c, ShowCmd(), id)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = testutil.ExecuteCommand(t, c, DeleteCmd(), id)
	assert.NoError(t, err, "deleting twice succeeds")
}

func TestAddAndRemoveLabel(t *testing.T) {
	db, c := testutil.SetupCLITest(t)
	list := strconv.Itoa(testutil.CreateTestTaskList(t, db, "Home"))
	testutil.CreateTestLabel(t, db, "urgent", "#FF0000")
	id := strconv.Itoa(createTask(t, c, "--title", "Tag me", "--list", list))

	labelCount := func() int {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM task_labels").Scan(&n))
		return n
	}

	_, err := testutil.ExecuteCommand(t, c, AddLabelCmd(), id, "urgent")
	require.NoError(t, err)
	_, err = testutil.ExecuteCommand(t, c, AddLabelCmd(), id, "urgent")
	require.NoError(t, err)
	assert.Equal(t, 1, labelCount())

	_, err = testutil.ExecuteCommand(t, c, AddLabelCmd(), id, "missing")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	_, err = testutil.ExecuteCommand(t, c, RemoveLabelCmd(), id, "urgent")
	require.NoError(t, err)
	assert.Equal(t, 0, labelCount())
}
