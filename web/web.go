// Package web embeds the browser client and serves it from the site root.
// The client is a static bundle: it keeps the session token in localStorage
// and talks to the /api endpoints with fetch.
package web

import (
	"embed"

	"github.com/labstack/echo/v4"
)

//go:embed static
var assets embed.FS

// Register mounts the embedded client at /.
func Register(e *echo.Echo) {
	e.StaticFS("/", echo.MustSubFS(assets, "static"))
}
