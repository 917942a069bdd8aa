package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"

    "digital-physician-backend/config"
    "digital-physician-backend/database"
    applog "digital-physician-backend/logger"
    "digital-physician-backend/middleware"
    "digital-physician-backend/routes"
)

func main() {
    // Load configuration
    cfg, err := config.Load()
    if err != nil {
        log.Fatalf("Failed to load configuration: %v", err)
    }

    logger := applog.NewZapLogger(cfg.Log.File, cfg.Log.Level, cfg.IsProduction())
    defer logger.Sync()

    if cfg.IsProduction() {
        gin.SetMode(gin.ReleaseMode)
    }

    // Connect to database
    stores, err := database.Connect(cfg, logger)
    if err != nil {
        logger.Error("main", "Failed to connect to database", map[string]interface{}{"error": err})
        os.Exit(1)
    }

    router := gin.New()
    router.Use(
        gin.Recovery(),
        middleware.RequestID(),
        middleware.RequestLogger(logger),
        middleware.LimitBodySize(cfg.MaxBodyBytes),
        cors.New(cors.Config{
            AllowOrigins:     cfg.AllowedOrigins,
            AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
            AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Token", middleware.RequestIDHeader},
            ExposeHeaders:    []string{middleware.RequestIDHeader},
            AllowCredentials: true,
            MaxAge:           12 * time.Hour,
        }),
    )

    if err := routes.SetupRoutes(router, cfg, stores, logger); err != nil {
        logger.Error("main", "Failed to set up routes", map[string]interface{}{"error": err})
        os.Exit(1)
    }

    logAvailableEndpoints(router, logger)

    // Image diagnosis may take up to the image timeout, so writes get more room
    srv := &http.Server{
        Addr:         ":" + cfg.Port,
        Handler:      router,
        ReadTimeout:  15 * time.Second,
        WriteTimeout: cfg.AI.ImageTimeout + 10*time.Second,
        IdleTimeout:  60 * time.Second,
    }

    go func() {
        logger.Info("main", "Server starting", map[string]interface{}{
            "port":        cfg.Port,
            "environment": cfg.Environment,
            "database":    stores.Kind(),
        })

        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            logger.Error("main", "Failed to start server", map[string]interface{}{"error": err})
            os.Exit(1)
        }
    }()

    // Wait for interrupt signal to gracefully shutdown the server
    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    logger.Info("main", "Shutting down server", nil)

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        logger.Warn("main", "Server forced to shutdown", map[string]interface{}{"error": err.Error()})
    }
    if err := stores.Disconnect(ctx); err != nil {
        logger.Warn("main", "Database disconnect failed", map[string]interface{}{"error": err.Error()})
    }

    logger.Info("main", "Server exited", nil)
}

// logAvailableEndpoints logs all registered routes
func logAvailableEndpoints(router *gin.Engine, logger applog.Logger) {
    for _, route := range router.Routes() {
        logger.Debug("main", "Route registered", map[string]interface{}{
            "method": route.Method,
            "path":   route.Path,
        })
    }
}
