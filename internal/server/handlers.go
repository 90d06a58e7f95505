package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/todolist/internal/models"
	labelservice "github.com/thenoetrevino/todolist/internal/services/label"
	taskservice "github.com/thenoetrevino/todolist/internal/services/task"
	tasklistservice "github.com/thenoetrevino/todolist/internal/services/tasklist"
	"github.com/thenoetrevino/todolist/internal/types"
)

// Services are the operations the HTTP surface calls into
type Services struct {
	Tasks     taskservice.Service
	Labels    labelservice.Service
	TaskLists tasklistservice.Service
	Ping      func(ctx context.Context) error
}

var errInvalidID = models.Invalid("id must be a positive integer")

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, svc Services, metrics *Metrics) {
	// static /task/labels routes win over /task/:id
	e.POST("/task/labels", createLabel(svc.Labels, metrics))
	e.GET("/task/labels", getAllLabels(svc.Labels))

	e.POST("/task", createTask(svc.Tasks, metrics))
	e.GET("/task", getAllTasks(svc.Tasks))
	e.GET("/task/:id", getTask(svc.Tasks))
	e.PUT("/task/:id", updateTask(svc.Tasks, metrics))
	e.DELETE("/task/:id", deleteTask(svc.Tasks, metrics))

	e.POST("/task/:id/add-label/:name", addLabel(svc.Tasks))
	e.POST("/task/:id/add-label", addLabelFromBody(svc.Tasks))
	e.DELETE("/task/:id/labels/:name", removeLabel(svc.Tasks))

	e.POST("/task-lists", createTaskList(svc.TaskLists))
	e.GET("/task-lists", getAllTaskLists(svc.TaskLists))
	e.GET("/task-lists/:id", getTaskList(svc.TaskLists))

	e.GET("/healthz", healthz(svc.Ping))
	e.GET("/metrics", getMetrics(metrics))
}

// ============================================================================
// TASKS
// ============================================================================

func createTask(tasks taskservice.Service, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TaskRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := req.Validate(true); err != nil {
			return err
		}

		task, err := tasks.CreateTask(c.Request().Context(), req.toCreate())
		if err != nil {
			return err
		}
		metrics.IncTasksCreated()
		return c.JSON(http.StatusCreated, newTaskResponse(task))
	}
}

func getAllTasks(tasks taskservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		all, err := tasks.GetAllTasks(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, newTaskResponses(all))
	}
}

func getTask(tasks taskservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		task, err := tasks.GetTaskByID(c.Request().Context(), types.TaskID(id))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, newTaskResponse(task))
	}
}

func updateTask(tasks taskservice.Service, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		var req TaskRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := req.Validate(false); err != nil {
			return err
		}

		if err := tasks.UpdateTask(c.Request().Context(), req.toUpdate(types.TaskID(id))); err != nil {
			return err
		}
		metrics.IncTasksUpdated()
		return c.NoContent(http.StatusNoContent)
	}
}

func deleteTask(tasks taskservice.Service, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		if err := tasks.DeleteTask(c.Request().Context(), types.TaskID(id)); err != nil {
			return err
		}
		metrics.IncTasksDeleted()
		return c.NoContent(http.StatusNoContent)
	}
}

// ============================================================================
// TASK LABELS
// ============================================================================

func addLabel(tasks taskservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		name := pathName(c, "name")
		if err := validateLabelName(name); err != nil {
			return err
		}
		if err := tasks.AddLabelToTask(c.Request().Context(), types.TaskID(id), name); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func addLabelFromBody(tasks taskservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		var req AddLabelRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := validateLabelName(req.Name); err != nil {
			return err
		}
		if err := tasks.AddLabelToTask(c.Request().Context(), types.TaskID(id), req.Name); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func removeLabel(tasks taskservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		name := pathName(c, "name")
		if err := validateLabelName(name); err != nil {
			return err
		}
		if err := tasks.RemoveLabelFromTask(c.Request().Context(), types.TaskID(id), name); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ============================================================================
// LABELS
// ============================================================================

func createLabel(labels labelservice.Service, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LabelDTO
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := req.Validate(); err != nil {
			return err
		}

		label, err := labels.CreateLabel(c.Request().Context(), labelservice.CreateLabelRequest{
			Name:  req.Name,
			Color: req.Color,
		})
		if err != nil {
			return err
		}
		metrics.IncLabelsCreated()
		return c.JSON(http.StatusCreated, LabelDTO{Name: label.Name, Color: label.Color})
	}
}

func getAllLabels(labels labelservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		all, err := labels.GetAllLabels(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, newLabelDTOs(all))
	}
}

// ============================================================================
// TASK LISTS
// ============================================================================

func createTaskList(lists tasklistservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TaskListRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := req.Validate(); err != nil {
			return err
		}
		list, err := lists.CreateTaskList(c.Request().Context(), req.Name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, newTaskListResponse(list))
	}
}

func getAllTaskLists(lists tasklistservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		all, err := lists.GetAllTaskLists(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, newTaskListResponses(all))
	}
}

func getTaskList(lists tasklistservice.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c, "id")
		if err != nil {
			return err
		}
		list, err := lists.GetTaskListByID(c.Request().Context(), types.TaskListID(id))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, newTaskListResponse(list))
	}
}

// ============================================================================
// OPERATIONS
// ============================================================================

func healthz(ping func(context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ping != nil {
			if err := ping(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func getMetrics(metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, metrics.GetSnapshot())
	}
}

// pathName returns a decoded path parameter
func pathName(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
