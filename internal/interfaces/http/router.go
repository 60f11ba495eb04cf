package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kape-pos-api/internal/application/auth"
	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	CategoryUC *usecase.CategoryUseCase
	AddonUC    *usecase.OptionUseCase
	SizeUC     *usecase.OptionUseCase
	RoleUC     *usecase.RoleUseCase
	ProductUC  *usecase.ProductUseCase
	Users      repository.UserRepository // fuente del rol actual para RequireRole
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	privileged := RequireRole(deps.Users, entity.RoleAdmin, entity.RoleManager)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/me", authRequired, authHandler.Me)

	// Administración de cuentas (token + rol admin/manager, verificado en DB)
	userHandler := NewUserHandler(deps.AuthUC)
	users := api.Group("/users", authRequired, privileged)
	users.Get("/", userHandler.List)
	users.Patch("/:id/active", userHandler.ToggleActive)
	users.Patch("/:id/reset-password", userHandler.ResetPassword)

	// Catálogo de lookup (público, como el resto del catálogo de Settings)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:name", categoryHandler.Rename)
	categories.Delete("/:name", categoryHandler.Delete)

	addons := api.Group("/addons")
	addonHandler := NewOptionHandler(deps.AddonUC, "Addon")
	addons.Get("/", addonHandler.List)
	addons.Post("/", addonHandler.Create)
	addons.Put("/:id", addonHandler.Update)
	addons.Delete("/:id", addonHandler.Delete)

	sizes := api.Group("/sizes")
	sizeHandler := NewOptionHandler(deps.SizeUC, "Size")
	sizes.Get("/", sizeHandler.List)
	sizes.Post("/", sizeHandler.Create)
	sizes.Put("/:id", sizeHandler.Update)
	sizes.Delete("/:id", sizeHandler.Delete)

	roles := api.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Post("/", roleHandler.Create)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Productos (requieren token, sin rol privilegiado)
	products := api.Group("/products", authRequired)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
}
