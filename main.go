package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Local development reads a .env file; in production the variables
	// come from the platform.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()

	projectID := os.Getenv("GCP_PROJECT_ID")

	var gemini *GeminiClient
	if projectID != "" {
		var err error
		gemini, err = NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"))
		if err != nil {
			log.Fatalf("Could not initialize Gemini: %v", err)
		}
		defer gemini.Close()
		log.Printf("Gemini client ready (project: %s)", projectID)
	} else {
		log.Println("GCP_PROJECT_ID not set — AI suggestions disabled")
	}

	srv := NewServer(NewStore(), gemini)

	log.Printf("Crossword studio listening on http://localhost:%s", port)
	if err := http.ListenAndServe(":"+port, srv); err != nil {
		log.Fatal(err)
	}
}
