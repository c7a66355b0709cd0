package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pattanan23/elearnnig-it/certificate"
	"github.com/pattanan23/elearnnig-it/config"
	"github.com/pattanan23/elearnnig-it/database"
	"github.com/pattanan23/elearnnig-it/mailer"
	"github.com/pattanan23/elearnnig-it/media"
	"github.com/pattanan23/elearnnig-it/repository"
	"github.com/pattanan23/elearnnig-it/routers"
	"github.com/pattanan23/elearnnig-it/scheduler"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	m, err := mailer.New(cfg)
	if err != nil {
		log.Fatalf("Failed to configure mailer: %v", err)
	}

	store := repository.New(db, cfg.SaltRound)
	segmenter := media.NewSegmenter(cfg.FFmpegPath, cfg.FFprobePath, cfg.VideoSegments)

	app := routers.NewApp(routers.Deps{
		Cfg:      cfg,
		Store:    store,
		Mailer:   m,
		Uploader: media.NewUploader(cfg.UploadDir, segmenter),
		Renderer: &certificate.Renderer{
			FontPath:     cfg.CertFontPath,
			BoldFontPath: cfg.CertFontBoldPath,
			LogoPath:     cfg.CertLogoPath,
			Locale:       cfg.CertLocale,
		},
	})

	cron, err := scheduler.Start(cfg.ResetCleanupSpec, store)
	if err != nil {
		log.Fatalf("Failed to start reset code scheduler: %v", err)
	}

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	<-cron.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Fiber shutdown error: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Database close error: %v", err)
	}
	log.Println("Bye")
}
