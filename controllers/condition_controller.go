package controllers

import (
    "errors"
    "net/http"

    "github.com/gin-gonic/gin"

    "digital-physician-backend/database"
    "digital-physician-backend/models"
    "digital-physician-backend/services"
)

// ConditionController serves the condition table and treatment plans
type ConditionController struct {
    conditions database.ConditionRepository
}

func NewConditionController(conditions database.ConditionRepository) *ConditionController {
    return &ConditionController{conditions: conditions}
}

func (cc *ConditionController) ListConditions(c *gin.Context) {
    all, err := cc.conditions.All(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "error":   "Failed to load conditions",
            "details": err.Error(),
        })
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "conditions": all,
        "count":      len(all),
    })
}

func (cc *ConditionController) GetCondition(c *gin.Context) {
    condition, ok := cc.lookup(c)
    if !ok {
        return
    }
    c.JSON(http.StatusOK, condition)
}

// GetConditionPlan returns the 7-day plan of a condition in ?lang=en|ur
func (cc *ConditionController) GetConditionPlan(c *gin.Context) {
    condition, ok := cc.lookup(c)
    if !ok {
        return
    }
    lang := models.ParseLanguage(c.DefaultQuery("lang", "en"))

    c.JSON(http.StatusOK, gin.H{
        "condition_id": condition.ID,
        "language":     lang.Display(),
        "plan":         services.GenerateTreatmentPlan(condition, lang),
    })
}

// SearchConditions finds the first condition whose keywords overlap ?q
func (cc *ConditionController) SearchConditions(c *gin.Context) {
    query := c.Query("q")
    if query == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
        return
    }
    lang := models.ParseLanguage(c.DefaultQuery("lang", "en"))

    all, err := cc.conditions.All(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{
            "error":   "Failed to load conditions",
            "details": err.Error(),
        })
        return
    }

    condition, found := database.FindSimpleMatch(all, query, lang)
    if !found {
        c.JSON(http.StatusNotFound, gin.H{"error": "No matching condition", "query": query})
        return
    }
    c.JSON(http.StatusOK, condition)
}

func (cc *ConditionController) lookup(c *gin.Context) (*models.Condition, bool) {
    condition, err := cc.conditions.GetByID(c.Request.Context(), c.Param("id"))
    if err != nil {
        status := http.StatusInternalServerError
        message := "Failed to load condition"
        if errors.Is(err, database.ErrConditionNotFound) {
            status = http.StatusNotFound
            message = "Condition not found"
        }
        c.JSON(status, gin.H{
            "error":   message,
            "details": err.Error(),
        })
        return nil, false
    }
    return condition, true
}
