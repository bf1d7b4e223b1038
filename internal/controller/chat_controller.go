package controller

import (
	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/pkg/serverutils"
	"brand-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IChatController exposes the public widget API. No auth: the session key is
// the capability.
type IChatController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	RecordMessage(ctx *fiber.Ctx) error
	CaptureContact(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
}

type chatController struct {
	sessionService service.ISessionService
}

func NewChatController(sessionService service.ISessionService) IChatController {
	return &chatController{
		sessionService: sessionService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("sessions", c.StartSession)
	h.Get("sessions/:sessionKey", c.ShowSession)
	h.Post("sessions/:sessionKey/messages", c.RecordMessage)
	h.Post("sessions/:sessionKey/contact", c.CaptureContact)
	h.Post("sessions/:sessionKey/end", c.EndSession)
}

func (c *chatController) StartSession(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *chatController) RecordMessage(ctx *fiber.Ctx) error {
	sessionKey := ctx.Params("sessionKey")

	var req dto.RecordMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.RecordMessage(ctx.Context(), sessionKey, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success record message", res))
}

func (c *chatController) CaptureContact(ctx *fiber.Ctx) error {
	sessionKey := ctx.Params("sessionKey")

	var req dto.CaptureContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.CaptureContact(ctx.Context(), sessionKey, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success capture contact", res))
}

func (c *chatController) EndSession(ctx *fiber.Ctx) error {
	sessionKey := ctx.Params("sessionKey")

	var req dto.EndSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.sessionService.End(ctx.Context(), sessionKey, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success end session", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	sessionKey := ctx.Params("sessionKey")

	res, err := c.sessionService.Show(ctx.Context(), sessionKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}
