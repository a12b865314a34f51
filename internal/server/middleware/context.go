package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/verdantlab/schemaloom/pkg/loader"
)

// App carries the shared dependencies of the HTTP server: the document
// loader feeding the generator, and the optional database pool for run
// persistence. DBConn is nil when no DATABASE_URL is configured.
type App struct {
	DBConn       *pgxpool.Pool
	Loader       loader.DocumentLoader
	MasterAPIKey string
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
