package middleware

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"

    "digital-physician-backend/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one
func RequestID() gin.HandlerFunc {
    return func(c *gin.Context) {
        id := c.GetHeader(RequestIDHeader)
        if id == "" {
            id = uuid.NewString()
        }
        c.Set("request_id", id)
        c.Header(RequestIDHeader, id)
        c.Next()
    }
}

// RequestLogger writes one structured line per request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
    return func(c *gin.Context) {
        start := time.Now()
        c.Next()

        details := map[string]interface{}{
            "request_id": c.GetString("request_id"),
            "method":     c.Request.Method,
            "path":       c.FullPath(),
            "status":     c.Writer.Status(),
            "duration":   time.Since(start).String(),
            "client_ip":  c.ClientIP(),
        }
        if len(c.Errors) > 0 {
            details["errors"] = c.Errors.String()
        }

        switch status := c.Writer.Status(); {
        case status >= http.StatusInternalServerError:
            log.Error("http", "Request failed", details)
        case status >= http.StatusBadRequest:
            log.Warn("http", "Request rejected", details)
        default:
            log.Info("http", "Request handled", details)
        }
    }
}

// LimitBodySize caps the request body; larger bodies fail to bind
func LimitBodySize(maxBytes int64) gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
        c.Next()
    }
}
