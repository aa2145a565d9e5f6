package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ytget/tripwise/internal/mockserver"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := mockserver.Options{
		FailDetail: os.Getenv("MOCK_FAIL_DETAIL"),
	}
	if raw := os.Getenv("MOCK_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid MOCK_DELAY %q: %v", raw, err)
		}
		opts.Delay = delay
	}
	for _, origin := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			opts.AllowedOrigins = append(opts.AllowedOrigins, origin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r := mockserver.New(opts).Router()
	log.Printf("TripWise mock service on :%s/api (delay %s)", port, opts.Delay)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
