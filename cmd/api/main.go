package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShasthoSeba/telemed-scheduler/internal/config"
	dbpkg "github.com/ShasthoSeba/telemed-scheduler/internal/db"
	"github.com/ShasthoSeba/telemed-scheduler/internal/jobs"
	"github.com/ShasthoSeba/telemed-scheduler/internal/middleware"
	"github.com/ShasthoSeba/telemed-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	expireUnpaidUC := routes.RegisterRoutes(r, db, cfg)

	sweep := jobs.StartExpirySweep(cfg.ExpirySweepSpec, expireUnpaidUC)
	defer sweep.Stop()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
