package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type namedCheck struct {
	name  string
	check Check
}

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// PostgreSQL is always checked; Redis and MongoDB only when configured.
type HealthDependenciesHandler struct {
	checks []namedCheck
}

// NewHealthDependenciesHandler accepts nil for the optional stores.
func NewHealthDependenciesHandler(db *sql.DB, rdb *redis.Client, mdb *mongo.Database) *HealthDependenciesHandler {
	h := &HealthDependenciesHandler{}
	h.add("postgres", db.PingContext)
	if rdb != nil {
		h.add("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	if mdb != nil {
		h.add("mongodb", func(ctx context.Context) error {
			return mdb.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		})
	}
	return h
}

func (h *HealthDependenciesHandler) add(name string, check Check) {
	h.checks = append(h.checks, namedCheck{name: name, check: check})
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	healthy := true

	for _, nc := range h.checks {
		if err := nc.check(ctx); err != nil {
			deps[nc.name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			continue
		}
		deps[nc.name] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
