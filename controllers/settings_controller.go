package controllers

import (
    "errors"
    "net/http"

    "github.com/gin-gonic/gin"

    "digital-physician-backend/services"
)

type SettingsController struct {
    settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
    return &SettingsController{settings: settings}
}

type oracleCredentialRequest struct {
    APIKey string `json:"api_key" binding:"max=512"`
}

// GetOracleSettings reports whether the oracle is configured, with the key masked
func (sc *SettingsController) GetOracleSettings(c *gin.Context) {
    ctx := c.Request.Context()
    c.JSON(http.StatusOK, gin.H{
        "configured": sc.settings.OracleCredential(ctx) != "",
        "api_key":    sc.settings.MaskedCredential(ctx),
    })
}

// UpdateOracleSettings stores a new oracle credential. An empty key clears it.
func (sc *SettingsController) UpdateOracleSettings(c *gin.Context) {
    var req oracleCredentialRequest

    if err := c.ShouldBindJSON(&req); err != nil {
        badRequest(c, "Invalid request format", err)
        return
    }

    if err := sc.settings.UpdateOracleCredential(c.Request.Context(), req.APIKey); err != nil {
        if errors.Is(err, services.ErrInvalidCredential) {
            badRequest(c, "Invalid API key", err)
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{
            "error":   "Failed to update settings",
            "details": err.Error(),
        })
        return
    }

    sc.GetOracleSettings(c)
}
