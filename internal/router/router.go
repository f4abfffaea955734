package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/golang-jwt/jwt/v5"

	"tripplanner/internal/auth"
	"tripplanner/internal/config"
	"tripplanner/internal/handler"
	"tripplanner/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tripHandler *handler.TripHandler,
	memberHandler *handler.TripMemberHandler,
	activityHandler *handler.ActivityHandler,
	locationHandler *handler.LocationHandler,
	requirementHandler *handler.TravelRequirementHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// User routes; the role gate applies only where listed
	adminOnly := RequireRole(model.PlatformRoleAdmin)
	secured.GET("/users", userHandler.ListUsers, adminOnly)
	secured.GET("/users/me", userHandler.GetMe)
	secured.PUT("/users/me", userHandler.UpdateMe)
	secured.GET("/users/:id", userHandler.GetUser, adminOnly)
	secured.PUT("/users/:id", userHandler.UpdateUser, adminOnly)
	secured.DELETE("/users/:id", userHandler.DeleteUser, adminOnly)

	// Trip routes
	secured.POST("/trips", tripHandler.Create)
	secured.GET("/trips/public", tripHandler.ListPublic)
	secured.GET("/trips/my-trips", tripHandler.ListMine)
	secured.GET("/trips/:id", tripHandler.GetOne)
	secured.PUT("/trips/:id", tripHandler.Update)
	secured.DELETE("/trips/:id", tripHandler.Delete)

	// Trip roster routes
	secured.POST("/trips/:tripId/members", memberHandler.Add)
	secured.GET("/trips/:tripId/members", memberHandler.List)
	secured.PUT("/trips/:tripId/members/:memberId/role", memberHandler.UpdateRole)
	secured.DELETE("/trips/:tripId/members/:memberId", memberHandler.Remove)

	// Activity routes
	secured.POST("/activities", activityHandler.Create)
	secured.GET("/activities/trip/:tripId", activityHandler.ListByTrip)
	secured.GET("/activities/:id", activityHandler.GetOne)
	secured.PUT("/activities/:id", activityHandler.Update)
	secured.DELETE("/activities/:id", activityHandler.Remove)

	// Location catalog routes
	secured.POST("/locations", locationHandler.Create)
	secured.GET("/locations", locationHandler.FindAll)
	secured.GET("/locations/:id", locationHandler.FindOne)
	secured.PUT("/locations/:id", locationHandler.Update)
	secured.DELETE("/locations/:id", locationHandler.Remove)

	// Travel requirements routes
	secured.POST("/travel-requirements", requirementHandler.Create)
	secured.GET("/travel-requirements/trip/:tripId", requirementHandler.FindByTrip)
	secured.PUT("/travel-requirements/trip/:tripId", requirementHandler.Update)
	secured.DELETE("/travel-requirements/trip/:tripId", requirementHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
