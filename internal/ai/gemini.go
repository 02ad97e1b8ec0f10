// README: Gemini provider; schema-constrained intent extraction and general chat replies.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"dreamstate/internal/modules/intent"
)

const geminiModel = "gemini-2.0-flash"

// Provider implements intent extraction and general replies on top of
// Google's Gemini models.
type Provider struct {
	client    *genai.Client
	extractor *genai.GenerativeModel
	chat      *genai.GenerativeModel
}

// NewProvider initializes a Gemini client.
// apiKey should be provided from environment variables.
func NewProvider(ctx context.Context, apiKey string) (*Provider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Extraction model: forced JSON output, temperature zero so the same
	// message classifies the same way across runs.
	extractor := client.GenerativeModel(geminiModel)
	extractor.ResponseMIMEType = "application/json"
	extractor.SetTemperature(0)
	extractor.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(extractorSystemPrompt)}}

	// Chat model: plain text, a little warmth allowed.
	chat := client.GenerativeModel(geminiModel)
	chat.SetTemperature(0.4)
	chat.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatSystemPrompt)}}

	return &Provider{client: client, extractor: extractor, chat: chat}, nil
}

// Close cleans up the Gemini client resources.
func (p *Provider) Close() {
	p.client.Close()
}

// Extract sends the guest message through the extraction model and decodes
// the JSON reply into an intent record. A transport failure is returned as an
// error; anything wrong with the body of a successful response (malformed
// JSON, no candidates, empty text) is recovered into the "other" default
// record, so a successful call always yields a usable record.
func (p *Provider) Extract(ctx context.Context, message string) (*intent.Record, error) {
	resp, err := p.extractor.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("gemini extraction error: %w", err)
	}
	return decodeExtraction(resp, message), nil
}

// decodeExtraction turns a transport-successful response into a record. A
// response without usable text degrades to the "other" default, same as
// malformed JSON.
func decodeExtraction(resp *genai.GenerateContentResponse, message string) *intent.Record {
	text, err := candidateText(resp)
	if err != nil {
		log.Printf("ai: extraction response unusable, defaulting intent: %v", err)
		return intent.Default(message)
	}
	// Decode validates the intent and the dataset taxonomy and never fails.
	return intent.Decode([]byte(cleanJSONString(text)), message)
}

// GenerateReply produces a short conversational answer for greetings and
// anything the structured handlers do not cover.
func (p *Provider) GenerateReply(ctx context.Context, message string) (string, error) {
	resp, err := p.chat.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat error: %w", err)
	}
	text, err := candidateText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// candidateText extracts the concatenated text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini returned empty text parts")
	}
	return b.String(), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
