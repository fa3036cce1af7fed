package main

import (
	"log"

	// Embedded zone database for HUB_TIMEZONE on minimal images
	_ "time/tzdata"

	"github.com/MrSnakeDoc/linkhub/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linkhub failed to start: %v", err)
	}
}
