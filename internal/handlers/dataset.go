package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/apodego/apode/internal/models"
)

// ListDatasets handles GET /v1/datasets
func (h *Handler) ListDatasets(c *fiber.Ctx) error {
	result, err := h.datasetService.List()
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// DescribeDataset handles GET /v1/datasets/:dataset
func (h *Handler) DescribeDataset(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.datasetService.Describe(ctx, c.Params("dataset"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ColumnStat handles GET /v1/datasets/:dataset/columns/:column/stats/:stat
func (h *Handler) ColumnStat(c *fiber.Ctx) error {
	input := &models.SurfaceRequest{
		Dataset: c.Params("dataset"),
		Column:  c.Params("column"),
		Name:    c.Params("stat"),
	}
	if err := input.Validate(); err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.datasetService.Stat(ctx, input)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ColumnPlot handles GET /v1/datasets/:dataset/columns/:column/plots/:plot
func (h *Handler) ColumnPlot(c *fiber.Ctx) error {
	input := &models.SurfaceRequest{
		Dataset: c.Params("dataset"),
		Column:  c.Params("column"),
		Name:    c.Params("plot"),
	}
	if err := input.Validate(); err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.datasetService.Plot(ctx, input)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
