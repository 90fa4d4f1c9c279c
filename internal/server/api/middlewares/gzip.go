package middlewares

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type Gzip struct{}

func NewGzip() *Gzip {
	return &Gzip{}
}

func (*Gzip) Http() echo.MiddlewareFunc {
	return echomiddleware.Gzip()
}
