package http

import (
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/transports-api/web"
)

// Static monta el frontend embebido en la raíz. Debe registrarse DESPUÉS de
// las rutas /api: Fiber resuelve en orden de registro y el fallback a
// index.html atraparía cualquier ruta.
func Static(app *fiber.App) error {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return err
	}
	app.Use(filesystem.New(filesystem.Config{
		Root: nethttp.FS(sub),
		// Rutas desconocidas sirven la página única (mismo comportamiento que un catch-all)
		NotFoundFile: "index.html",
	}))
	return nil
}
