package tasks

import (
	"database/sql"
	"time"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/permissions"
	"amyza-admin/app/routes/auth"
	"amyza-admin/app/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetTasksAPI(c *fiber.Ctx) error {
	filters := database.TaskFilters{
		Status:     c.Query("status"),
		AssigneeID: c.Query("assignee_id"),
		Search:     c.Query("search"),
	}

	tasks, err := database.GetTasksWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}
	return c.JSON(fiber.Map{
		"tasks": tasks,
		"count": len(tasks),
	})
}

func GetTaskStatsAPI(c *fiber.Ctx) error {
	tasks, err := database.GetTasksWithFilters(config.GetDB(), database.TaskFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tasks"})
	}
	return c.JSON(fiber.Map{"stats": stats.CountTasks(tasks)})
}

func GetTaskByIDAPI(c *fiber.Ctx) error {
	task, err := database.GetTaskByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}
	return c.JSON(fiber.Map{"task": task})
}

type taskRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description"`
	Status         string  `json:"status" validate:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	AssigneeID     *string `json:"assignee_id" validate:"omitempty,uuid"`
	Deadline       string  `json:"deadline"`
	DeadlineLocked *bool   `json:"deadline_locked"`
}

func CreateTaskAPI(c *fiber.Ctx) error {
	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		CreatedBy:   auth.CurrentAdmin(c).ID,
	}
	status := models.TaskNotStarted
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
	}
	task.ApplyStatus(status, time.Now())

	if req.Deadline != "" {
		deadline, err := time.ParseInLocation("2006-01-02", req.Deadline, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid deadline. Use YYYY-MM-DD"})
		}
		task.Deadline = &deadline
	}
	if req.DeadlineLocked != nil {
		task.DeadlineLocked = *req.DeadlineLocked
	}

	if err := database.CreateTask(config.GetDB(), task); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create task"})
	}
	return c.Status(201).JSON(fiber.Map{"task": task})
}

func UpdateTaskAPI(c *fiber.Ctx) error {
	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	task, err := database.GetTaskByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}

	role := permissions.RoleFromCtx(c)

	if req.Deadline != "" {
		deadline, err := time.ParseInLocation("2006-01-02", req.Deadline, time.Local)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid deadline. Use YYYY-MM-DD"})
		}
		changed := task.Deadline == nil || !task.Deadline.Equal(deadline)
		// A locked deadline only moves for a super admin
		if changed && task.DeadlineLocked && role != permissions.RoleSuperAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Deadline is locked", "allowed": false})
		}
		task.Deadline = &deadline
	}
	if req.DeadlineLocked != nil && *req.DeadlineLocked != task.DeadlineLocked {
		if role != permissions.RoleSuperAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Only a super admin can change the deadline lock", "allowed": false})
		}
		task.DeadlineLocked = *req.DeadlineLocked
	}

	task.Title = req.Title
	task.Description = req.Description
	task.AssigneeID = req.AssigneeID
	if req.Status != "" {
		task.ApplyStatus(models.TaskStatus(req.Status), time.Now())
	}

	if err := database.UpdateTask(config.GetDB(), task); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return c.JSON(fiber.Map{"task": task})
}

func UpdateTaskStatusAPI(c *fiber.Ctx) error {
	type statusRequest struct {
		Status string `json:"status" validate:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	task, err := database.GetTaskByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch task"})
	}

	task.ApplyStatus(models.TaskStatus(req.Status), time.Now())

	if err := database.UpdateTask(config.GetDB(), task); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return c.JSON(fiber.Map{"task": task})
}

func DeleteTaskAPI(c *fiber.Ctx) error {
	if err := database.DeleteTask(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Task not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
