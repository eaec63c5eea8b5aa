package http

import (
	"stock-intel/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request through the application logger.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.Field("latency", v.Latency),
				logger.StringField("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				fields = append(fields, logger.ErrorField(v.Error))
				log.Error("Request failed", fields...)
				return nil
			}
			log.Info("Request handled", fields...)
			return nil
		},
	})
}
