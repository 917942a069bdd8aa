package routes

import (
    "context"
    "fmt"
    "net/http"

    "github.com/gin-gonic/gin"

    "digital-physician-backend/config"
    "digital-physician-backend/controllers"
    "digital-physician-backend/database"
    "digital-physician-backend/logger"
    "digital-physician-backend/middleware"
    "digital-physician-backend/services"
)

// SetupRoutes wires services and controllers onto router
func SetupRoutes(router *gin.Engine, cfg *config.Config, stores *database.Stores, log logger.Logger) error {
    conditions, err := stores.Conditions.All(context.Background())
    if err != nil {
        return fmt.Errorf("failed to load conditions: %w", err)
    }

    // Initialize services
    settingsService := services.NewSettingsService(stores.Settings, cfg.AI.APIKey, log)
    aiService := services.NewAIService(cfg.AI, settingsService, log)
    processor := services.NewInputProcessor(services.NewConditionMatcher(conditions))
    chatbotService := services.NewChatbotService(processor, aiService, stores.Messages, cfg.Matching, log)

    // Initialize controllers
    healthController := controllers.NewHealthController(stores, aiService)
    chatbotController := controllers.NewChatbotController(chatbotService, processor, log)
    conditionController := controllers.NewConditionController(stores.Conditions)
    settingsController := controllers.NewSettingsController(settingsService)
    wsController := controllers.NewWebSocketController(chatbotService, cfg.AllowedOrigins, log)

    router.GET("/health", healthController.Health)

    public := router.Group("/api/v1")
    {
        public.POST("/chat", chatbotController.HandleChat)
        public.POST("/analyze", chatbotController.HandleAnalyze)
        public.POST("/analyze-image", chatbotController.HandleAnalyzeImage)
        public.GET("/history/:session_id", chatbotController.GetChatHistory)

        public.GET("/conditions", conditionController.ListConditions)
        public.GET("/conditions/search", conditionController.SearchConditions)
        public.GET("/conditions/:id", conditionController.GetCondition)
        public.GET("/conditions/:id/plan", conditionController.GetConditionPlan)

        // WebSocket for real-time chat
        public.GET("/ws", wsController.HandleWebSocket)
    }

    admin := router.Group("/api/v1/admin")
    admin.Use(middleware.RequireAdminToken(cfg.AdminToken))
    {
        admin.GET("/settings/oracle", settingsController.GetOracleSettings)
        admin.PUT("/settings/oracle", settingsController.UpdateOracleSettings)
    }

    router.NoRoute(func(c *gin.Context) {
        c.JSON(http.StatusNotFound, gin.H{
            "error": "Route not found",
            "path":  c.Request.URL.Path,
        })
    })

    return nil
}
