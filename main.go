package main

import (
	"time"

	"github.com/inkwell-dev/inkwell/config"
	"github.com/inkwell-dev/inkwell/models"
	"github.com/inkwell-dev/inkwell/routes"
	"github.com/inkwell-dev/inkwell/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Contact{},
		&models.PageView{},
		&models.UploadedImage{},
	)

	r := routes.SetupRouter(db)

	// Sweep uploads that were never attached to a post (best-effort)
	utils.StartOrphanImageCleaner(db, 15*time.Minute, time.Hour)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
