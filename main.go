package main

import (
	"fmt"
	"log"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/configs"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/middlewares"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedDemoCatalog(); err != nil {
		log.Fatalf("seed demo catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
