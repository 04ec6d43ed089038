package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"github.com/apodego/apode/internal/models"
)

const (
	paramDownsampling = "downsampling"
	paramPoints       = "points"
)

// Curve handles GET curve requests
// GET /v1/curves/:kind?dataset=xxx&variant=g
// GET /v1/curves/:kind?values=1,2,3&pline=0.5
// GET /v1/curves/:kind?dataset=xxx&downsampling=lttb&points=200
func (h *Handler) Curve(c *fiber.Ctx) error {
	ref, options, err := parseQuery(c)
	if err != nil {
		return err
	}
	input := &models.CurveRequest{
		SampleRef: ref,
		Options:   options,
	}

	if v, ok := options[paramDownsampling]; ok {
		input.Downsampling = cast.ToString(v)
		delete(options, paramDownsampling)
	}
	if v, ok := options[paramPoints]; ok {
		points, err := cast.ToIntE(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "points must be an integer")
		}
		input.Points = points
		delete(options, paramPoints)
	}

	return h.executeCurve(c, input)
}

// CurvePost handles POST curve requests with JSON body
// POST /v1/curves/:kind
func (h *Handler) CurvePost(c *fiber.Ctx) error {
	var body models.CurveRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c, err)
	}
	return h.executeCurve(c, &body)
}

func (h *Handler) executeCurve(c *fiber.Ctx, input *models.CurveRequest) error {
	if kind := c.Params("kind"); kind != "" {
		input.Kind = kind
	}

	if err := input.Validate(); err != nil {
		return err
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	result, err := h.curveService.Execute(ctx, input)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
