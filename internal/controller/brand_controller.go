package controller

import (
	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/pkg/serverutils"
	"brand-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBrandController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddRecipient(ctx *fiber.Ctx) error
	ListRecipients(ctx *fiber.Ctx) error
	ToggleRecipient(ctx *fiber.Ctx) error
	RemoveRecipient(ctx *fiber.Ctx) error
}

type brandController struct {
	brandService service.IBrandService
}

func NewBrandController(brandService service.IBrandService) IBrandController {
	return &brandController{
		brandService: brandService,
	}
}

func (c *brandController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/brands")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/recipients", c.AddRecipient)
	h.Get(":id/recipients", c.ListRecipients)
	h.Put(":id/recipients/:recipientId", c.ToggleRecipient)
	h.Delete(":id/recipients/:recipientId", c.RemoveRecipient)
}

func (c *brandController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBrandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.brandService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create brand", res))
}

func (c *brandController) List(ctx *fiber.Ctx) error {
	res, err := c.brandService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list brands", res))
}

func (c *brandController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand id")
	}

	var req dto.UpdateBrandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.brandService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update brand", res))
}

func (c *brandController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand id")
	}

	if err := c.brandService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete brand", nil))
}

func (c *brandController) AddRecipient(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand id")
	}

	var req dto.AddRecipientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.brandService.AddRecipient(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add recipient", res))
}

func (c *brandController) ListRecipients(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand id")
	}

	res, err := c.brandService.ListRecipients(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recipients", res))
}

func (c *brandController) ToggleRecipient(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand id")
	}
	recipientId, err := uuid.Parse(ctx.Params("recipientId"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid recipient id")
	}

	var req dto.UpdateRecipientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.brandService.ToggleRecipient(ctx.Context(), id, recipientId, req.IsActive)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update recipient", res))
}

func (c *brandController) RemoveRecipient(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand id")
	}
	recipientId, err := uuid.Parse(ctx.Params("recipientId"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid recipient id")
	}

	if err := c.brandService.RemoveRecipient(ctx.Context(), id, recipientId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove recipient", nil))
}
