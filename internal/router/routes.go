package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jivehq/jive-api/internal/auth"
	"github.com/jivehq/jive-api/internal/config"
	"github.com/jivehq/jive-api/internal/entity"
	"github.com/jivehq/jive-api/internal/handler"
	middlewarepkg "github.com/jivehq/jive-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	UsersAdmin *handler.UserAdminHandler
	Classes    *handler.ClassHandler
	ClassAdmin *handler.ClassAdminHandler
	Selections *handler.SelectionHandler
	Payments   *handler.PaymentHandler
	OrderAdmin *handler.OrderAdminHandler
}

// Register wires all HTTP routes for the API. Ownership-scoped routes run the
// self check before any role check or store access.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	e.GET("/classes", handlers.Classes.ListApproved)
	e.GET("/classes-popular", handlers.Classes.ListPopular)
	e.GET("/class/:id", handlers.Classes.Get)
	e.GET("/instructors", handlers.Users.ListInstructors)
	e.GET("/instructors-popular", handlers.Users.ListPopularInstructors)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	self := secured.Group("", middlewarepkg.RequireSelf())
	self.GET("/check-user", handlers.Users.CheckRole)
	self.GET("/instructor-classes", handlers.Classes.ListMine)
	self.GET("/selected-class", handlers.Selections.List)
	self.GET("/payments", handlers.Payments.ListMine)
	self.GET("/enroll-class", handlers.Payments.ListEnrolled)

	instructor := secured.Group("", middlewarepkg.RequireRole(entity.RoleInstructor))
	instructor.POST("/add-class", handlers.Classes.Create)
	instructor.PATCH("/update-class/:id", handlers.Classes.Update)

	secured.DELETE("/delete-class/:id", handlers.Classes.Delete)

	secured.POST("/selected-class", handlers.Selections.Add)
	secured.DELETE("/selected-class/:id", handlers.Selections.Remove)

	secured.POST("/payment-intent", handlers.Payments.CreateIntent, middlewarepkg.PaymentRateLimiter(cfg.RateLimitPayment))
	secured.POST("/payments", handlers.Payments.Record)

	admin := secured.Group("/admin", middlewarepkg.RequireRole(entity.RoleAdmin))
	admin.GET("/users", handlers.UsersAdmin.List)
	admin.PATCH("/users/:id/role", handlers.UsersAdmin.ChangeRole)
	admin.DELETE("/users/:id", handlers.UsersAdmin.Delete)
	admin.GET("/classes", handlers.ClassAdmin.List)
	admin.PATCH("/classes/:id/status", handlers.ClassAdmin.SetStatus)
	admin.GET("/orders", handlers.OrderAdmin.List)
	admin.PATCH("/orders/:id", handlers.OrderAdmin.Update)
}
