package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/archlens/landscape-backend/internal/landscape/diagram"
	"github.com/archlens/landscape-backend/internal/landscape/domain"
	"github.com/archlens/landscape-backend/internal/landscape/export"
	"github.com/archlens/landscape-backend/internal/landscape/service"
)

// RunExport fetches the current record set from the review service and
// writes the landscape diagram (or one system's diagram) as JSON and DOT.
func RunExport(args []string) {
	outDir := "out"
	if len(args) > 0 {
		outDir = args[0]
	}
	systemCode := ""
	if len(args) > 1 {
		systemCode = args[1]
	}

	baseURL := os.Getenv("REVIEW_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:9090/api/v1/reviews"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := service.NewReviewClient(baseURL, 10, 20)
	records, err := client.FetchSystems(ctx)
	if err != nil {
		log.Fatalf("fetch systems: %v", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("create out dir: %v", err)
	}

	if systemCode != "" {
		d, err := diagram.ForSystem(systemCode, records)
		if err != nil {
			log.Fatalf("system diagram: %v", err)
		}
		writeDiagram(outDir, "system_"+systemCode, d, systemCode)
		return
	}

	d := diagram.Landscape(records)
	writeDiagram(outDir, "landscape", d, "System Landscape")
}

func writeDiagram(outDir, name string, d *domain.Diagram, title string) {
	jsonPath := filepath.Join(outDir, name+".json")
	if err := export.WriteJSON(jsonPath, d); err != nil {
		log.Fatalf("write %s: %v", jsonPath, err)
	}

	dotPath := filepath.Join(outDir, name+".dot")
	if err := os.WriteFile(dotPath, []byte(export.ToDOT(d, title)), 0644); err != nil {
		log.Fatalf("write %s: %v", dotPath, err)
	}

	log.Printf("wrote %s and %s", jsonPath, dotPath)
}
