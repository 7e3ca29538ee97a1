package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/JovenTung/UpNext/helpers"
	"github.com/JovenTung/UpNext/models"
	"github.com/JovenTung/UpNext/services"

	"github.com/gin-gonic/gin"
)

// PlanRequest is the stateless planner contract: everything the scheduler
// needs arrives in the body, nothing is read from the stores.
type PlanRequest struct {
	Assignments []models.Assignment    `json:"assignments" binding:"required"`
	Preferences models.UserPreferences `json:"preferences" binding:"required"`
	Existing    []models.StudyEvent    `json:"existing"`
}

// Plan computes study sessions for the posted assignments and preferences.
// Returns only newly created events; the caller merges them.
func Plan() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlanRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		events, err := services.Plan(req.Assignments, req.Preferences, req.Existing, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrInvalidPlanInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

// ApplyPlan plans from the caller's stored data and persists the result.
func ApplyPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		events, err := services.PlanForUser(userID, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrInvalidPlanInput) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

// getUserID pulls the authenticated user id off the context, writing the
// error response itself when the request is unauthenticated.
func getUserID(c *gin.Context) string {
	claimsVal, ok := c.Get("claims")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	claims, ok := claimsVal.(*helpers.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid claims"})
		return ""
	}
	return claims.UserID
}
