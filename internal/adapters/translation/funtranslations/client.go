package funtranslations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/randomtoy/pokedexd/internal/domain"
)

// Response bodies are read up to maxBodyBytes; rejections keep at most
// maxDetailBytes of their body as error detail.
const (
	headerAPISecret = "X-Funtranslations-Api-Secret"
	maxBodyBytes    = 1 << 20
	maxDetailBytes  = 512
)

// endpoints maps each style to its engine path under the base URL.
var endpoints = map[domain.TranslationStyle]string{
	domain.StyleSolemn:  "/translate/yoda.json",
	domain.StyleArchaic: "/translate/shakespeare.json",
}

// Client implements ports.Translator via the FunTranslations API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	logger     *zap.Logger
}

func NewClient(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		timeout:    timeout,
		logger:     logger.Named("funtranslations"),
	}
}

type translationResponse struct {
	Contents *struct {
		Translated *string `json:"translated"`
	} `json:"contents"`
}

func (c *Client) Translate(ctx context.Context, style domain.TranslationStyle, text string) (string, error) {
	path, ok := endpoints[style]
	if !ok {
		return "", &domain.TranslationError{
			Kind: domain.TranslationRejected,
			Err:  fmt.Errorf("no engine for style %d", int(style)),
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL := c.baseURL + path + "?" + url.Values{"text": {text}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &domain.TranslationError{Kind: domain.TranslationUnreachable, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPISecret, c.apiKey)
	}

	c.logger.Debug("translating", zap.Stringer("style", style), zap.Int("text_len", len(text)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.TranslationError{Kind: domain.TranslationUnreachable, Err: fmt.Errorf("http call: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The body is detail only; a failed read still leaves a rejection.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBytes))
		return "", &domain.TranslationError{
			Kind:       domain.TranslationRejected,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return "", &domain.TranslationError{Kind: domain.TranslationUnreachable, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(body) > maxBodyBytes {
		return "", &domain.TranslationError{
			Kind: domain.TranslationBadResponse,
			Err:  fmt.Errorf("response exceeds %d bytes", maxBodyBytes),
		}
	}

	translated, err := decodeTranslation(body)
	if err != nil {
		return "", &domain.TranslationError{Kind: domain.TranslationBadResponse, Err: err}
	}
	return translated, nil
}

func decodeTranslation(body []byte) (string, error) {
	var tr translationResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if tr.Contents == nil || tr.Contents.Translated == nil {
		return "", errors.New("missing field: contents.translated")
	}
	if strings.TrimSpace(*tr.Contents.Translated) == "" {
		return "", errors.New("empty translation")
	}
	return *tr.Contents.Translated, nil
}
