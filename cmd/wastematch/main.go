package main

import (
	"context"
	"log"

	"github.com/dalemusser/waffle/app"
	"github.com/dalemusser/wastematch/internal/app/bootstrap"
	"github.com/joho/godotenv"
)

func main() {
	// Legacy deployments keep MONGODB_URI and PORT in .env; a missing file is fine.
	_ = godotenv.Load()

	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
