// Package router maps URLs to handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
)

// Middlewares are the per-route middlewares applied by the Register
// functions.  Read routes go through Cache; write routes go through
// RateLimit and then Invalidate.  Nil entries are skipped.
type Middlewares struct {
	Cache      echo.MiddlewareFunc
	RateLimit  echo.MiddlewareFunc
	Invalidate echo.MiddlewareFunc
}

func (m Middlewares) reads() []echo.MiddlewareFunc {
	return nonNil(m.Cache)
}

func (m Middlewares) writes() []echo.MiddlewareFunc {
	return nonNil(m.RateLimit, m.Invalidate)
}

func nonNil(fns ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			out = append(out, fn)
		}
	}
	return out
}

// RegisterRoutes registers routes outside /v1.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}
