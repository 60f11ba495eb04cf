package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/kape-pos-api/internal/application/auth"
	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kape-pos-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/kape-pos-api/internal/interfaces/http"
	"github.com/jhoicas/kape-pos-api/pkg/config"
	"github.com/jhoicas/kape-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	imageStore, err := storage.NewImageStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	addonRepo := postgres.NewOptionRepository(pool, entity.KindAddon)
	sizeRepo := postgres.NewOptionRepository(pool, entity.KindSize)
	roleRepo := postgres.NewRoleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	addonUC := usecase.NewOptionUseCase(addonRepo)
	sizeUC := usecase.NewOptionUseCase(sizeRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	productUC := usecase.NewProductUseCase(productRepo, imageStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		ExposeHeaders: "Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// Swagger UI en local: http://localhost:<port>/docs (si existe el spec generado)
	httpRouter.SwaggerUI(app, "./docs/swagger.json", "Kape POS API")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Backend running!"})
	})

	// Imágenes subidas: solo lectura, por nombre de archivo.
	app.Static("/uploads", imageStore.Root())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		AddonUC:    addonUC,
		SizeUC:     sizeUC,
		RoleUC:     roleUC,
		ProductUC:  productUC,
		Users:      userRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
