package controllers

import (
	"net/http"

	"github.com/JovenTung/UpNext/models"
	"github.com/JovenTung/UpNext/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetMyEvents lists the current user's study events in start order.
func GetMyEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		events, err := services.GetEventsByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// UpsertEvents merges a batch of events into the user's calendar by id.
func UpsertEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Events []models.StudyEvent `json:"events" binding:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid events payload"})
			return
		}
		for _, e := range body.Events {
			if e.ID == "" || e.AssignmentID == "" || !e.Start.Before(e.End) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Events need an id, an assignmentId and start < end"})
				return
			}
		}

		if err := services.UpsertEvents(userID, body.Events); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Events saved", "count": len(body.Events)})
	}
}

// UpdateEvent applies a partial edit (drag, resize, completion toggle).
func UpdateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var patch services.EventPatch
		if err := c.BindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event update"})
			return
		}
		if patch.Start != nil && patch.End != nil && !patch.Start.Before(*patch.End) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Event start must be before end"})
			return
		}

		updated, err := services.UpdateEvent(userID, c.Param("id"), patch)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
