package main

import (
	"log"

	"github.com/JovenTung/UpNext/config"
	"github.com/JovenTung/UpNext/helpers"
	"github.com/JovenTung/UpNext/logger"
	"github.com/JovenTung/UpNext/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	if err := logger.Init(config.Env.LogMode); err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.L.Sync()

	config.ConnectDB()
	helpers.SetJWTKey(config.SigningKey())

	gin.SetMode(config.Env.GinMode)
	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api)

	logger.L.Info("starting server", "port", config.Env.Port)
	if err := r.Run(":" + config.Env.Port); err != nil {
		logger.L.Fatal("server exited", "error", err)
	}
}
