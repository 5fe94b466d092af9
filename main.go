package main

import (
	"fmt"
	"log"
	"os"

	"retrofit-backend/config"
	"retrofit-backend/models"
	"retrofit-backend/routes"
	"retrofit-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Quote{},
		&models.Material{},
		&models.FollowUpTemplate{},
		&models.FollowUpLog{},
	)
}

func main() {
	followUps := services.NewFollowUpService(config.DB)
	followUps.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := services.NewDraftStore()
	r := routes.SetupRouter(store)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
