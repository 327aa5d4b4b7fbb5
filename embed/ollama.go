package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaConfig holds the settings for an Ollama embedding endpoint.
type OllamaConfig struct {
	BaseURL string        // e.g. http://localhost:11434 or https://api.ollama.com
	Model   string        // e.g. all-minilm, bge-m3
	Token   string        // Bearer token for Ollama Cloud (empty = no auth)
	Timeout time.Duration // per-request timeout; 0 = no client timeout
}

// Ollama implements Embedder using the Ollama REST API (/api/embed).
type Ollama struct {
	cfg        OllamaConfig
	httpClient *http.Client
}

// NewOllama creates an Ollama-backed embedder.
func NewOllama(cfg OllamaConfig) *Ollama {
	return &Ollama{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Embed generates a vector embedding for the given text.
func (o *Ollama) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := o.embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("ollama embed: empty response")
	}
	return vecs[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one call, one vector
// per input text in input order.
func (o *Ollama) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := o.embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("ollama embed: got %d embeddings for %d texts", len(vecs), len(texts))
	}
	return vecs, nil
}

// embed posts an /api/embed request; input is a string or a []string.
func (o *Ollama) embed(ctx context.Context, input interface{}) ([][]float32, error) {
	payload := map[string]interface{}{
		"model": o.cfg.Model,
		"input": input,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ollama embed: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+"/api/embed", bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("ollama embed: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+o.cfg.Token)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ollama embed: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama embed: status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var decoded struct {
		Embeddings [][]float32 `json:"embeddings"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("ollama embed decode: %w", err)
	}
	return decoded.Embeddings, nil
}

var _ Embedder = (*Ollama)(nil)
