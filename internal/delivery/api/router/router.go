// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"funnel/config"
	"funnel/internal/delivery/api/middleware"
	"funnel/internal/delivery/api/router/handler"
	"funnel/internal/domain/entity"
	"funnel/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead leaves room for boundaries and form fields around an upload.
const multipartOverhead = 1 << 20

// documentUploadRoute is exempt from the JSON body limit and has its own.
const documentUploadRoute = "/api/reservation/:id/documents/:kind"

type RouterParams struct {
	fx.In

	InquiryHandler     *handler.InquiryHandler
	ReservationHandler *handler.ReservationHandler
	CalendarHandler    *handler.CalendarHandler
	AdminHandler       *handler.AdminHandler
	PartnerHandler     *handler.PartnerHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Metrics            *metrics.Metrics
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	inquiryHandler     *handler.InquiryHandler
	reservationHandler *handler.ReservationHandler
	calendarHandler    *handler.CalendarHandler
	adminHandler       *handler.AdminHandler
	partnerHandler     *handler.PartnerHandler
	authMiddleware     *middleware.AuthMiddleware
	metrics            *metrics.Metrics
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		inquiryHandler:     params.InquiryHandler,
		reservationHandler: params.ReservationHandler,
		calendarHandler:    params.CalendarHandler,
		adminHandler:       params.AdminHandler,
		partnerHandler:     params.PartnerHandler,
		authMiddleware:     params.AuthMiddleware,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// BodyLimit caps JSON request bodies. The document upload route is skipped and
// limited by UploadBodyLimit instead.
func (r *router) BodyLimit() echo.MiddlewareFunc {
	return echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == documentUploadRoute
		},
		Limit: r.config.HTTP.MaxRequestBodySize,
	})
}

// UploadBodyLimit caps document upload bodies.
func (r *router) UploadBodyLimit() echo.MiddlewareFunc {
	limit := r.config.Storage.MaxUploadBytes + multipartOverhead

	return echomiddleware.BodyLimit(strconv.FormatInt(limit, 10))
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Public funnel routes
	api.POST("/inquiry", r.inquiryHandler.Submit)
	api.GET("/blocked-dates", r.calendarHandler.ListBlockedDates)

	reservationGroup := api.Group("/reservation")
	{
		reservationGroup.GET("/lookup", r.reservationHandler.Lookup)
		reservationGroup.GET("/available-dates", r.calendarHandler.AvailableDates)
		reservationGroup.GET("/:id", r.reservationHandler.GetReservation)
		reservationGroup.PATCH("/:id", r.reservationHandler.UpdateReservation)
		reservationGroup.POST("/:id/documents/:kind", r.reservationHandler.UploadDocument, r.UploadBodyLimit())
	}

	// Admin routes require the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/inquiries", r.adminHandler.ListInquiries)
		adminGroup.POST("/inquiries/:id/complete", r.adminHandler.CompleteReservation)
		adminGroup.PATCH("/inquiries/:id/status", r.adminHandler.ChangeStatus)

		adminGroup.GET("/blocked-dates", r.calendarHandler.ListBlockedDates)
		adminGroup.PUT("/blocked-dates", r.calendarHandler.SetBlockedDate)
		adminGroup.DELETE("/blocked-dates/:date", r.calendarHandler.DeleteBlockedDate)
	}

	// Partner dashboard routes require the partner role
	partnerGroup := api.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireRole(entity.RolePartner))
	{
		partnerGroup.GET("/inquiries", r.partnerHandler.ListInquiries)
		partnerGroup.GET("/qr", r.partnerHandler.ReferralQR)
	}
}
