// README: CLI probe for the intent classifier (Gemini when keyed, heuristic otherwise).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"dreamstate/internal/ai"
	"dreamstate/internal/modules/intent"
)

func main() {
	ctx := context.Background()

	var extractor intent.Extractor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		provider, err := ai.NewProvider(ctx, apiKey)
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}
		defer provider.Close()
		extractor = provider
	} else {
		fmt.Println("GEMINI_API_KEY not set; using heuristic fallback")
	}

	svc := intent.NewService(extractor)

	messages := os.Args[1:]
	if len(messages) == 0 {
		messages = []string{
			"Hi there!",
			"What's the wifi at unit 5?",
			"Show me properties above $150 per night",
			"Which properties have pools?",
			"What's your favorite color?",
		}
	}

	for _, msg := range messages {
		rec, err := svc.Classify(ctx, msg)
		if err != nil {
			log.Fatalf("classify %q: %v", msg, err)
		}
		out, _ := json.MarshalIndent(rec, "", "  ")
		fmt.Printf("User: %s\n%s\n%s\n", msg, out, strings.Repeat("-", 40))
	}
}
