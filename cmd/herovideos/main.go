// Command herovideos batch-generates the destination hero videos used on
// package landing pages. Progress persists in .progress.json inside the
// output directory, so interrupted or partially failed runs resume where
// they left off.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"globehunters/config"
	"globehunters/httputil"
	"globehunters/videogen"
)

const (
	catalogPath = "config/videos.yaml"
	outputDir   = "public/videos/packages/heroes"
)

func main() {
	log.SetFlags(log.LstdFlags)

	_ = godotenv.Load()

	apiKey := os.Getenv("RUNWAY_API_KEY")
	if apiKey == "" {
		log.Println("Error: RUNWAY_API_KEY environment variable not set")
		os.Exit(1)
	}

	jobs, err := config.LoadVideoCatalog(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load video catalog: %v", err)
	}

	clients := httputil.NewClients()
	client := videogen.NewRunwayClient(apiKey, clients.API)
	store := &videogen.FileStore{Path: filepath.Join(outputDir, ".progress.json")}
	driver := videogen.NewDriver(client, store, outputDir, nil)

	if err := driver.Run(context.Background(), jobs); err != nil {
		log.Fatalf("Video generation failed: %v", err)
	}
}
