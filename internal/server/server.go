package server

import (
	"log/slog"
	"net/http"
	"time"

	"ctchen222/tictactoe/internal/api/controller"
	"ctchen222/tictactoe/internal/api/response"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Server wires the move advisor routes into a gin engine. It keeps no game
// state between requests.
type Server struct {
	engine *gin.Engine
}

func NewServer(moveController *controller.MoveController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), traceRequests())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	v1.POST("/move", moveController.NextMove)
	v1.GET("/difficulties", moveController.Difficulties)

	engine.NoRoute(func(c *gin.Context) {
		response.ErrorResponse(c, http.StatusNotFound, "route not found")
	})

	return &Server{engine: engine}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// traceRequests opens a span per request and logs its outcome.
func traceRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		ctx, span := tracer.Start(c.Request.Context(), "server."+c.Request.Method+" "+route, trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
		))
		defer span.End()

		start := time.Now()
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
		slog.InfoContext(ctx, "Handled request",
			"http.method", c.Request.Method,
			"http.route", route,
			"http.status_code", status,
			"duration", time.Since(start),
		)
	}
}
