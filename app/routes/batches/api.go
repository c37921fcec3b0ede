package batches

import (
	"database/sql"
	"time"

	"amyza-admin/app/config"
	"amyza-admin/app/database"
	"amyza-admin/app/models"
	"amyza-admin/app/stats"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// batchView is a batch with its derived module progress attached. Progress is
// computed from status and current module on every read, never stored.
type batchView struct {
	*models.Batch
	Progress int `json:"progress"`
}

func withProgress(batch *models.Batch) batchView {
	return batchView{
		Batch:    batch,
		Progress: stats.ModuleProgress(batch.Status, batch.CurrentModule, models.TotalModules),
	}
}

func GetBatchesAPI(c *fiber.Ctx) error {
	batches, err := database.GetAllBatches(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch batches"})
	}

	views := make([]batchView, 0, len(batches))
	for _, batch := range batches {
		views = append(views, withProgress(batch))
	}
	return c.JSON(fiber.Map{
		"batches": views,
		"count":   len(views),
	})
}

func GetBatchByIDAPI(c *fiber.Ctx) error {
	batch, err := database.GetBatchByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch batch"})
	}
	return c.JSON(fiber.Map{"batch": withProgress(batch)})
}

type batchRequest struct {
	Code          string `json:"code" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=upcoming active completed"`
	CurrentModule int    `json:"current_module" validate:"min=1,max=3"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date"`
}

func parseBatchDates(req batchRequest, batch *models.Batch) error {
	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return err
	}
	batch.StartDate = startDate
	batch.EndDate = nil
	if req.EndDate != "" {
		endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
		if err != nil {
			return err
		}
		batch.EndDate = &endDate
	}
	return nil
}

func CreateBatchAPI(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	batch := &models.Batch{
		Code:          req.Code,
		Status:        models.BatchStatus(req.Status),
		CurrentModule: req.CurrentModule,
	}
	if err := parseBatchDates(req, batch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	if err := database.CreateBatch(config.GetDB(), batch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create batch"})
	}
	return c.Status(201).JSON(fiber.Map{"batch": withProgress(batch)})
}

func UpdateBatchAPI(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	batch, err := database.GetBatchByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch batch"})
	}

	batch.Code = req.Code
	batch.Status = models.BatchStatus(req.Status)
	batch.CurrentModule = req.CurrentModule
	if err := parseBatchDates(req, batch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	if err := database.UpdateBatch(config.GetDB(), batch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update batch"})
	}
	return c.JSON(fiber.Map{"batch": withProgress(batch)})
}

func DeleteBatchAPI(c *fiber.Ctx) error {
	if err := database.DeleteBatch(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete batch"})
	}
	return c.JSON(fiber.Map{"message": "Batch deleted"})
}
