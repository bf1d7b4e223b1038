package controller

import (
	"fmt"
	"time"

	"brand-chatbot-be/internal/dto"
	"brand-chatbot-be/internal/pkg/serverutils"
	"brand-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	ListEmailLogs(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	CleanupSessions(ctx *fiber.Ctx) error
	RunDailySummary(ctx *fiber.Ctx) error
	DailySummaries(ctx *fiber.Ctx) error
	ExportConversations(ctx *fiber.Ctx) error
}

type adminController struct {
	authService      service.IAuthService
	dashboardService service.IDashboardService
	userService      service.IUserService
	sessionService   service.ISessionService
}

func NewAdminController(
	authService service.IAuthService,
	dashboardService service.IDashboardService,
	userService service.IUserService,
	sessionService service.ISessionService,
) IAdminController {
	return &adminController{
		authService:      authService,
		dashboardService: dashboardService,
		userService:      userService,
		sessionService:   sessionService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Post("login", c.Login)

	protected := h.Group("", serverutils.JwtMiddleware)
	protected.Get("stats", c.Stats)
	protected.Get("sessions", c.ListSessions)
	protected.Get("sessions/:sessionKey", c.ShowSession)
	protected.Get("users", c.ListUsers)
	protected.Get("emails", c.ListEmailLogs)
	protected.Get("logs", c.Logs)
	protected.Post("maintenance/cleanup-sessions", c.CleanupSessions)
	protected.Post("analytics/daily-summary", c.RunDailySummary)
	protected.Get("analytics/daily-summary", c.DailySummaries)
	protected.Get("export/conversations", c.ExportConversations)
}

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	var brandId *uuid.UUID
	if raw := ctx.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.NewBadRequestError("invalid brand_id")
		}
		brandId = &id
	}

	res, err := c.dashboardService.Stats(ctx.Context(), brandId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *adminController) ListSessions(ctx *fiber.Ctx) error {
	var brandId *uuid.UUID
	if raw := ctx.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.NewBadRequestError("invalid brand_id")
		}
		brandId = &id
	}
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	sessions, total, err := c.dashboardService.ListSessions(ctx.Context(), brandId, status, limit, offset)
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, fiber.Map{
			"session_key":      s.SessionKey,
			"brand_id":         s.BrandId,
			"user_id":          s.UserId,
			"status":           string(s.Status),
			"started_at":       s.StartedAt,
			"last_activity":    s.LastActivity,
			"ended_at":         s.EndedAt,
			"duration_seconds": s.DurationSeconds,
			"message_count":    s.MessageCount,
			"total_tokens":     s.TotalTokens,
			"email_sent":       s.EmailSent,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", fiber.Map{
		"total": total,
		"items": items,
	}))
}

func (c *adminController) ShowSession(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Show(ctx.Context(), ctx.Params("sessionKey"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	users, total, err := c.userService.List(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		items = append(items, fiber.Map{
			"id":                  u.Id,
			"email":               u.Email,
			"name":                u.Name,
			"phone":               u.Phone,
			"business_name":       u.BusinessName,
			"country":             u.Country,
			"total_conversations": u.TotalConversations,
			"first_seen":          u.FirstSeen,
			"last_seen":           u.LastSeen,
		})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", fiber.Map{
		"total": total,
		"items": items,
	}))
}

func (c *adminController) ListEmailLogs(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	logs, total, err := c.dashboardService.ListEmailLogs(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list email logs", fiber.Map{
		"total": total,
		"items": logs,
	}))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.dashboardService.Logs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", entries))
}

func (c *adminController) CleanupSessions(ctx *fiber.Ctx) error {
	var req dto.CleanupSessionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dashboardService.CleanupSessions(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cleanup sessions", res))
}

func (c *adminController) RunDailySummary(ctx *fiber.Ctx) error {
	var req dto.DailySummaryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.dashboardService.RunDailySummary(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success run daily summary", nil))
}

func (c *adminController) DailySummaries(ctx *fiber.Ctx) error {
	brandId, err := uuid.Parse(ctx.Query("brand_id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid brand_id")
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if raw := ctx.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return serverutils.NewBadRequestError("from must be YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := ctx.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return serverutils.NewBadRequestError("to must be YYYY-MM-DD")
		}
		to = parsed
	}

	res, err := c.dashboardService.DailySummaries(ctx.Context(), brandId, from, to)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list daily summaries", res))
}

func (c *adminController) ExportConversations(ctx *fiber.Ctx) error {
	var brandId *uuid.UUID
	if raw := ctx.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.NewBadRequestError("invalid brand_id")
		}
		brandId = &id
	}
	days := ctx.QueryInt("days", 7)
	if days < 1 {
		return serverutils.NewBadRequestError("days must be at least 1")
	}
	format := ctx.Query("format", "json")

	data, contentType, err := c.dashboardService.ExportConversations(ctx.Context(), brandId, days, format)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("conversations-%s.%s", time.Now().Format("2006-01-02"), format)
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(data)
}
