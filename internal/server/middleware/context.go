package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/everkept/memoria/backend/pkg/kinship"
	"github.com/everkept/memoria/backend/pkg/store"
	"github.com/everkept/memoria/backend/pkg/tree"
)

type AppUser struct {
	UserID      int64
	Role        string
	Permissions []string
}

// App carries the shared service dependencies every handler needs.
type App struct {
	DBConn         *pgxpool.Pool
	Queue          *amqp091.Channel
	Key            *keyfunc.Keyfunc
	Store          store.MemorialStore
	Resolver       *kinship.Resolver
	Linker         *kinship.Linker
	Loader         *tree.Loader
	MasterAPIKey   string
	MasterUserID   int64
	MasterUserRole string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

// AppContextMiddleware wraps every request context with the shared App.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
