package controllers

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/gin-gonic/gin"

    "digital-physician-backend/logger"
    "digital-physician-backend/models"
    "digital-physician-backend/services"
)

const (
    defaultHistoryLimit = 50
    maxHistoryLimit     = 500
)

type ChatbotController struct {
    chatbotService *services.ChatbotService
    processor      *services.InputProcessor
    log            logger.Logger
}

func NewChatbotController(chatbotService *services.ChatbotService, processor *services.InputProcessor, log logger.Logger) *ChatbotController {
    return &ChatbotController{
        chatbotService: chatbotService,
        processor:      processor,
        log:            log,
    }
}

// HandleChat runs one message through the decision policy
func (cc *ChatbotController) HandleChat(c *gin.Context) {
    var req models.ChatRequest

    if err := c.ShouldBindJSON(&req); err != nil {
        badRequest(c, "Invalid request format", err)
        return
    }
    req.Channel = models.ChannelWeb

    response, err := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
    if err != nil {
        if errors.Is(err, services.ErrEmptyMessage) {
            badRequest(c, "Invalid request format", err)
            return
        }
        cc.internalError(c, "Failed to process message", err)
        return
    }

    c.JSON(http.StatusOK, response)
}

// HandleAnalyze returns the pipeline result without choosing a reply
func (cc *ChatbotController) HandleAnalyze(c *gin.Context) {
    var req models.AnalyzeRequest

    if err := c.ShouldBindJSON(&req); err != nil {
        badRequest(c, "Invalid request format", err)
        return
    }

    processed, err := cc.processor.Process(c.Request.Context(), req.Message)
    if err != nil {
        cc.internalError(c, "Failed to analyze message", err)
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "analysis": processed,
        "summary":  services.Summary(processed, processed.DetectedLanguage),
    })
}

// HandleAnalyzeImage diagnoses from an uploaded picture
func (cc *ChatbotController) HandleAnalyzeImage(c *gin.Context) {
    var req models.ImageRequest

    if err := c.ShouldBindJSON(&req); err != nil {
        badRequest(c, "Invalid request format", err)
        return
    }

    response, err := cc.chatbotService.AnalyzeImage(c.Request.Context(), req)
    if err != nil {
        if errors.Is(err, services.ErrEmptyImage) {
            badRequest(c, "Invalid request format", err)
            return
        }
        cc.internalError(c, "Failed to analyze image", err)
        return
    }

    c.JSON(http.StatusOK, response)
}

// GetChatHistory returns the stored messages of a session
func (cc *ChatbotController) GetChatHistory(c *gin.Context) {
    sessionID := c.Param("session_id")
    limit := defaultHistoryLimit

    if limitStr := c.Query("limit"); limitStr != "" {
        l, err := strconv.Atoi(limitStr)
        if err != nil || l < 0 || l > maxHistoryLimit {
            c.JSON(http.StatusBadRequest, gin.H{
                "error":   "Invalid limit",
                "details": "limit must be between 0 and " + strconv.Itoa(maxHistoryLimit),
            })
            return
        }
        limit = l
    }

    history, err := cc.chatbotService.History(c.Request.Context(), sessionID, limit)
    if err != nil {
        cc.internalError(c, "Failed to retrieve chat history", err)
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "session_id": sessionID,
        "history":    history,
        "count":      len(history),
    })
}

func (cc *ChatbotController) internalError(c *gin.Context, message string, err error) {
    _ = c.Error(err)
    cc.log.Error("controller", message, map[string]interface{}{
        "path":  c.FullPath(),
        "error": err,
    })
    c.JSON(http.StatusInternalServerError, gin.H{
        "error":   message,
        "details": err.Error(),
    })
}

func badRequest(c *gin.Context, message string, err error) {
    c.JSON(http.StatusBadRequest, gin.H{
        "error":   message,
        "details": err.Error(),
    })
}
