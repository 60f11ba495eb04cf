package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SwaggerUI monta la UI de Swagger en /docs si el archivo de especificación
// existe. El middleware de contrib entra en pánico con un archivo ausente, así
// que sin el archivo la API arranca igual, solo sin documentación interactiva.
// Devuelve true si la UI quedó montada.
func SwaggerUI(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
