package middlewares

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/cfranzen/modelhub/log"
)

// Logger emits one structured line per request. The level tracks the
// response class, server errors log as errors, client errors as warnings.
type Logger struct{}

func NewLogger() *Logger {
	return &Logger{}
}

func (*Logger) Http() echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogLatency:       true,
		LogRemoteIP:      true,
		LogHost:          true,
		LogMethod:        true,
		LogURI:           true,
		LogRequestID:     true,
		LogUserAgent:     true,
		LogStatus:        true,
		LogError:         true,
		LogContentLength: true,
		LogResponseSize:  true,
		HandleError:      true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logw := log.Infow
			switch {
			case v.Status >= 500:
				logw = log.Errorw
			case v.Status >= 400:
				logw = log.Warnw
			}

			logw("http request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"host", v.Host,
				"bytesIn", v.ContentLength,
				"bytesOut", v.ResponseSize,
				"userAgent", v.UserAgent,
				"remoteIP", v.RemoteIP,
				"requestID", v.RequestID,
				"error", v.Error,
			)

			return nil
		},
	})
}
