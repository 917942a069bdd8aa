package controllers

import (
    "context"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
)

// HealthChecker is a backing store that can be pinged
type HealthChecker interface {
    HealthCheck(ctx context.Context) error
    Kind() string
}

// OracleStatus reports whether the diagnosis oracle has a usable credential
type OracleStatus interface {
    IsConfigured(ctx context.Context) bool
}

type HealthController struct {
    db     HealthChecker
    oracle OracleStatus
}

func NewHealthController(db HealthChecker, oracle OracleStatus) *HealthController {
    return &HealthController{db: db, oracle: oracle}
}

func (hc *HealthController) Health(c *gin.Context) {
    ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
    defer cancel()

    body := gin.H{
        "status":            "ok",
        "timestamp":         time.Now(),
        "db":                hc.db.Kind(),
        "oracle_configured": hc.oracle.IsConfigured(ctx),
    }

    if err := hc.db.HealthCheck(ctx); err != nil {
        body["status"] = "degraded"
        body["db_error"] = err.Error()
        c.JSON(http.StatusServiceUnavailable, body)
        return
    }

    c.JSON(http.StatusOK, body)
}
