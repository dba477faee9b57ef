package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/barbexa/barbexa-api/internal/config"
	dbpkg "github.com/barbexa/barbexa-api/internal/db"
	"github.com/barbexa/barbexa-api/internal/logger"
	"github.com/barbexa/barbexa-api/internal/routes"
)

func main() {

	_ = godotenv.Load()
	logger.Init()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.Info.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error.Fatalf("failed to start server: %v", err)
	}
}
