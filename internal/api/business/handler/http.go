package businessHandler

import (
	businessService "EmotiClose/internal/api/business/service"
	"EmotiClose/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BusinessHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	businessService businessService.IBusinessService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs businessService.IBusinessService,
) *BusinessHandler {
	return &BusinessHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		businessService: bs,
	}
}

func (h *BusinessHandler) Start(srv fiber.Router) {
	business := srv.Group("/business")

	business.Use(h.middleware.NewTokenMiddleware)

	companies := business.Group("/companies")
	companies.Post("/", h.CreateCompany)
	companies.Get("/:id", h.GetCompany)
	companies.Put("/:id", h.UpdateCompany)

	companies.Post("/:id/agent", h.CreateAgentConfig)
	companies.Get("/:id/agent", h.GetAgentConfig)
	companies.Put("/:id/agent", h.UpdateAgentConfig)
}
