package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/exercise-api/pkg/config"
	"github.com/noah-isme/exercise-api/pkg/middleware/requestid"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Logger.Format {
	case "console":
		zapCfg.Encoding = "console"
	default:
		zapCfg.Encoding = "json"
	}

	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.Logger.Level))
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logr, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return logr.With(zap.String("app", cfg.App.Name)), nil
}

// Level maps a LOGGER_LEVEL value onto a zap level. "log" is the info level and
// "verbose" has no zap counterpart below debug.
func Level(level string) zapcore.Level {
	switch level {
	case config.LevelError:
		return zapcore.ErrorLevel
	case config.LevelWarn:
		return zapcore.WarnLevel
	case config.LevelDebug, config.LevelVerbose:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func GinMiddleware(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		reqID := requestid.Value(c)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		}
		if reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}

		l.Info("http_request", fields...)
	}
}
