package controllers

import (
	"net/http"

	"github.com/JovenTung/UpNext/models"
	"github.com/JovenTung/UpNext/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateAssignment stores a new assignment for the current user.
func CreateAssignment() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var a models.Assignment
		if err := c.BindJSON(&a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment payload"})
			return
		}
		if err := validate.Struct(a); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := services.CreateAssignment(userID, a)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

// GetMyAssignments lists the current user's assignments, soonest due first.
func GetMyAssignments() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		assignments, err := services.GetAssignmentsByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, assignments)
	}
}

func GetAssignment() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		a, err := services.GetAssignment(userID, c.Param("id"))
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// DeleteAssignment removes an assignment and its planned study events.
func DeleteAssignment() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		deleted, err := services.DeleteAssignment(userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted"})
	}
}
