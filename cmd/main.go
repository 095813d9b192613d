package main

import (
	"os"

	"github.com/Mourad-Gh-code/HydrationTime/config"
	"github.com/Mourad-Gh-code/HydrationTime/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
