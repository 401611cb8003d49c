package practiceHandler

import (
	practiceService "EmotiClose/internal/api/practice/service"
	"EmotiClose/internal/middleware"
	jwtPkg "EmotiClose/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type PracticeHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	practiceService practiceService.IPracticeService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps practiceService.IPracticeService,
) *PracticeHandler {
	return &PracticeHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		practiceService: ps,
	}
}

func (h *PracticeHandler) Start(srv fiber.Router) {
	practice := srv.Group("/practice")

	practice.Use(h.middleware.NewTokenMiddleware)

	sessions := practice.Group("/sessions")
	sessions.Post("/", h.StartSession)
	sessions.Post("/:id/utterances", h.SubmitUtterance)
	sessions.Post("/:id/audio", h.SubmitAudioUtterance)
	sessions.Get("/:id/intent", h.CurrentIntent)
	sessions.Post("/:id/end", h.EndSession)

	history := practice.Group("/history")
	history.Get("/", h.GetHistory)
	history.Get("/:id", h.GetHistoryByID)
	history.Delete("/:id", h.DeleteHistory)

	live := practice.Group("/live")
	live.Use("/:id", h.upgradeLive)
	live.Get("/:id", websocket.New(h.handleLive))
}

// upgradeLive gates the live scoring socket. The token middleware already
// ran, so the authenticated user is copied into Locals where the websocket
// handler can still reach it after the upgrade.
func (h *PracticeHandler) upgradeLive(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userData, err := jwtPkg.GetUserLoginData(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	c.Locals("user_id", userData.ID)
	return c.Next()
}
