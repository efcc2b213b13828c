package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"lifehub/internal/auth"
	"lifehub/internal/config"
	apperrors "lifehub/internal/errors"
	"lifehub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gormDB *gorm.DB,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	ideaHandler *handler.IdeaHandler,
	todoHandler *handler.TodoHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler(cfg)

	e.GET("/health", func(c echo.Context) error {
		sqlDB, err := gormDB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		status := http.StatusOK
		body := echo.Map{
			"status":    "healthy",
			"database":  "connected",
			"timestamp": time.Now().UTC(),
		}
		if err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "disconnected"
		}
		return c.JSON(status, body)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error:   "Unauthorized",
				Message: "A valid access token is required",
			})
		},
	}))

	secured.GET("/auth/profile", authHandler.Profile)
	secured.GET("/auth/verify", authHandler.Verify)

	projects := secured.Group("/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/category/:tag", projectHandler.ListByCategory)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	ideas := secured.Group("/ideas")
	ideas.GET("", ideaHandler.List)
	ideas.GET("/category/:tag", ideaHandler.ListByCategory)
	ideas.GET("/:id", ideaHandler.Get)
	ideas.POST("", ideaHandler.Create)
	ideas.PUT("/:id", ideaHandler.Update)
	ideas.DELETE("/:id", ideaHandler.Delete)

	todos := secured.Group("/todos")
	todos.GET("", todoHandler.List)
	todos.GET("/category/:tag", todoHandler.ListByCategory)
	todos.GET("/:id", todoHandler.Get)
	todos.POST("", todoHandler.Create)
	todos.PUT("/:id", todoHandler.Update)
	todos.PATCH("/:id/toggle", todoHandler.Toggle)
	todos.DELETE("/:id", todoHandler.Delete)
}

// errorHandler renders every error in the {error, message} wire shape.
// 500s keep their detail server-side outside development.
func errorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		var resp apperrors.ErrorResponse
		switch m := he.Message.(type) {
		case apperrors.ErrorResponse:
			resp = m
		case string:
			resp = apperrors.ErrorResponse{Error: http.StatusText(he.Code), Message: m}
		default:
			resp = apperrors.ErrorResponse{Error: http.StatusText(he.Code), Message: fmt.Sprint(m)}
		}

		if he.Code == http.StatusInternalServerError {
			c.Logger().Error(err)
			if !cfg.IsDevelopment() {
				resp.Message = "An unexpected error occurred"
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Code)
			return
		}
		_ = c.JSON(he.Code, resp)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
