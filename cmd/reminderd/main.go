package main

import (
	"log"

	"github.com/remindhq/reminderd/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("reminderd failed to start: %v", err)
	}
}
