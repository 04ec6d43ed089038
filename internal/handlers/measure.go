package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/apodego/apode/internal/models"
	"github.com/apodego/apode/internal/utils"
)

// Query parameters that select the sample rather than a measure option
const (
	paramDataset = "dataset"
	paramColumn  = "column"
	paramValues  = "values"
)

// ListMeasures lists every family, its methods and default
// GET /v1/measures
func (h *Handler) ListMeasures(c *fiber.Ctx) error {
	return c.JSON(h.measureService.Catalog())
}

// Measure handles GET measure requests
// GET /v1/measures/:family/:method?dataset=xxx&column=xxx&k=20
// GET /v1/measures/:family/:method?values=1,2,3&alpha=inf
func (h *Handler) Measure(c *fiber.Ctx) error {
	ref, options, err := parseQuery(c)
	if err != nil {
		return err
	}
	return h.executeMeasure(c, &models.MeasureRequest{
		SampleRef: ref,
		Options:   options,
	})
}

// MeasurePost handles POST measure requests with JSON body
// POST /v1/measures/:family/:method
func (h *Handler) MeasurePost(c *fiber.Ctx) error {
	var body models.MeasureRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c, err)
	}
	return h.executeMeasure(c, &body)
}

// executeMeasure fills the path parameters, validates and evaluates
func (h *Handler) executeMeasure(c *fiber.Ctx, input *models.MeasureRequest) error {
	input.Family = c.Params("family")
	input.Method = c.Params("method")

	if err := input.Validate(); err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.measureService.Execute(ctx, input)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// parseQuery splits the query string into the sample reference and the
// remaining measure options
func parseQuery(c *fiber.Ctx) (models.SampleRef, map[string]any, error) {
	var ref models.SampleRef
	options := make(map[string]any)

	for key, value := range c.Queries() {
		switch key {
		case paramDataset:
			ref.Dataset = value
		case paramColumn:
			ref.Column = value
		case paramValues:
			values, err := utils.ParseFloatList(value)
			if err != nil {
				return ref, nil, fiber.NewError(fiber.StatusBadRequest, "values: "+err.Error())
			}
			ref.Values = values
		default:
			options[key] = value
		}
	}
	return ref, options, nil
}

func invalidJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_JSON",
			Message: "Failed to parse JSON body",
			Details: map[string]interface{}{"error": err.Error()},
		},
	})
}
