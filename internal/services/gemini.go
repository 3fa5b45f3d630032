package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

type geminiGenerator struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewGeminiGenerator builds a Gemini API provider. An empty baseURL keeps the
// SDK default endpoint.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL, modelName string, timeout time.Duration) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %w", ErrServiceUnavailable, err)
	}

	return &geminiGenerator{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

func (g *geminiGenerator) Ready() error {
	return nil
}

// Complete implements Generator.
func (g *geminiGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	temperature := float32(generationTemperature)
	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   generationMaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), generateConfig)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("%w: Gemini API error: %w", ErrServiceUnavailable, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: no response generated (nil response)", ErrServiceUnavailable)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		log.Println("❌ No text content in Gemini response")
		return "", fmt.Errorf("%w: no text content in response", ErrServiceUnavailable)
	}

	return text, nil
}
