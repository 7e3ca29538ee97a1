package controllers

import (
	"net/http"

	"github.com/JovenTung/UpNext/models"
	"github.com/JovenTung/UpNext/services"

	"github.com/gin-gonic/gin"
)

// SavePreferences replaces the current user's availability preferences.
func SavePreferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var prefs models.UserPreferences
		if err := c.BindJSON(&prefs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preferences payload"})
			return
		}
		if err := validate.Struct(prefs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		saved, err := services.SavePreferences(userID, prefs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}

func GetPreferences() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		prefs, ok, err := services.GetPreferences(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preferences not set"})
			return
		}
		c.JSON(http.StatusOK, prefs)
	}
}
