package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/toplustar/Management-tool/internal/auth"
	"github.com/toplustar/Management-tool/internal/handler"
	"github.com/toplustar/Management-tool/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	reportHandler *handler.ReportHandler,
	myInfoHandler *handler.MyInfoHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "HR System API is running",
		})
	})

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Session-gated routes: token check, then a fresh user lookup
	secured := api.Group("",
		echojwt.WithConfig(auth.SessionConfig(jwtService)),
		auth.LoadUser(users),
	)

	secured.GET("/auth/me", authHandler.Me)

	secured.GET("/dashboard/stats", dashboardHandler.Stats)

	secured.GET("/dailyreport", reportHandler.ListMine)
	secured.POST("/dailyreport", reportHandler.Create)
	secured.PUT("/dailyreport/:id", reportHandler.Update)
	secured.DELETE("/dailyreport/:id", reportHandler.Delete)

	secured.GET("/myinfo", myInfoHandler.Get)
	secured.PUT("/myinfo", myInfoHandler.Update)

	// Admin-gated routes
	admin := secured.Group("/admin", auth.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/reports", adminHandler.ListReports)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
