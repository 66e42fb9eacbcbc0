package main

import (
	"log"

	"github.com/MrSnakeDoc/uadb/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("❌ uadb failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("❌ uadb stopped with error: %v", err)
	}
}
