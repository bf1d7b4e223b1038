package controller

import (
	"os"

	internalWS "brand-chatbot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IFeedController upgrades admin dashboard connections onto the live event
// feed.
type IFeedController interface {
	RegisterRoutes(r fiber.Router)
	ServeWs(ctx *fiber.Ctx) error
}

type feedController struct {
	hub *internalWS.Hub
}

func NewFeedController(hub *internalWS.Hub) IFeedController {
	return &feedController{
		hub: hub,
	}
}

func (c *feedController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Get("feed", c.ServeWs)
}

func (c *feedController) ServeWs(ctx *fiber.Ctx) error {
	// Browsers cannot set headers on WebSocket handshakes, so the token also
	// rides a query param.
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(c.hub, conn)
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
