package handlers

import (
	"context"
	"net/http"
	"time"

	"copro-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint; overridden at build time with -ldflags
var Version = "dev"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db        *gorm.DB
	timeout   time.Duration
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		timeout:   2 * time.Second,
		startedAt: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string            `json:"status" example:"healthy"`
	Timestamp     time.Time         `json:"timestamp"`
	Version       string            `json:"version"`
	UptimeSeconds int64             `json:"uptime_seconds"`
	Services      map[string]string `json:"services"`
	LatencyMS     map[string]int64  `json:"latency_ms,omitempty"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) pingDatabase(ctx context.Context) (time.Duration, error) {
	sqlDB, err := h.db.DB()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err = sqlDB.PingContext(ctx)
	return time.Since(start), err
}

// missingTables lists migrated models whose table does not exist
func (h *HealthHandler) missingTables(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	migrator := h.db.WithContext(ctx).Migrator()
	var missing []string
	for _, m := range database.Models() {
		named, ok := m.(interface{ TableName() string })
		if !ok {
			continue
		}
		if !migrator.HasTable(named.TableName()) {
			missing = append(missing, named.TableName())
		}
	}
	return missing
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall status with database connectivity and ping latency
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now(),
		Version:       Version,
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		Services:      map[string]string{},
	}

	latency, err := h.pingDatabase(c.Request.Context())
	if err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Services["database"] = "healthy"
	response.LatencyMS = map[string]int64{"database": latency.Milliseconds()}
	c.JSON(http.StatusOK, response)
}

// Ready reports whether the service can take traffic: the database answers and the
// schema is migrated.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready", "schema": "ready"},
	}

	if _, err := h.pingDatabase(c.Request.Context()); err != nil {
		response.Ready = false
		response.Services["database"] = "not ready"
		response.Services["schema"] = "unknown"
	} else if missing := h.missingTables(c.Request.Context()); len(missing) > 0 {
		response.Ready = false
		response.Services["schema"] = "missing tables"
	}

	status := http.StatusOK
	if !response.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
