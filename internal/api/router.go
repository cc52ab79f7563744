package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/careerpilot/advisor-api/internal/api/handler"
	"github.com/careerpilot/advisor-api/internal/api/middleware"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// Dependencies carries the wired services the router exposes over HTTP.
// Which implementations sit behind each port is decided at startup.
type Dependencies struct {
	AuthService      ports.AuthService
	ProfileService   ports.ProfileService
	AdviceService    ports.AdviceService
	IngestionService ports.IngestionService
	ContactService   ports.ContactService

	JWTSecret string
	// Provider names the active advice backend for the metrics label.
	Provider string
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("advisor"))

	// --- Handlers ---
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(deps.AuthService)
	profileHandler := handler.NewProfileHandler(deps.ProfileService)
	adviceHandler := handler.NewAdviceHandler(deps.AdviceService, deps.Provider)
	resumeHandler := handler.NewResumeHandler(deps.IngestionService)
	contactHandler := handler.NewContactHandler(deps.ContactService)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public routes ---
	api := e.Group("/api")
	api.GET("/health", healthHandler.Liveness)
	api.POST("/users/signup", authHandler.Signup)
	api.POST("/users/login", authHandler.Login)
	api.POST("/contact", contactHandler.Send)

	// --- Token-gated routes ---
	authed := api.Group("", middleware.Auth(deps.JWTSecret))
	authed.GET("/users/profile", profileHandler.Get)
	authed.PUT("/users/profile", profileHandler.Update)

	authed.POST("/advice/career-paths", adviceHandler.CareerPaths)
	authed.POST("/advice/skill-gap", adviceHandler.SkillGap)
	authed.POST("/advice/resume-review", adviceHandler.ResumeReview)
	authed.POST("/advice/interview-questions", adviceHandler.InterviewQuestions)
	authed.POST("/advice/market-trends", adviceHandler.MarketTrends)

	authed.POST("/resume/extract", resumeHandler.Extract)

	return e
}
