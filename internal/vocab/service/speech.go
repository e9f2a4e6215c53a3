package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultSpeechURL is the Google Translate TTS endpoint. {lang} and {text}
// are replaced with query-escaped values.
const DefaultSpeechURL = "https://translate.google.com/translate_tts?ie=UTF-8&tl={lang}&q={text}&client=tw-ob"

type SpeechConfig struct {
	URLTemplate string
	Lang        string
	Timeout     time.Duration
	Client      *http.Client // optional
}

// SpeechService proxies text-to-speech audio from an upstream provider.
type SpeechService struct {
	template string
	lang     string
	client   *http.Client
}

func NewSpeechService(cfg SpeechConfig) *SpeechService {
	if cfg.URLTemplate == "" {
		cfg.URLTemplate = DefaultSpeechURL
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &SpeechService{template: cfg.URLTemplate, lang: cfg.Lang, client: client}
}

// AudioURL returns the upstream URL pronouncing word.
func (s *SpeechService) AudioURL(word string) string {
	return strings.NewReplacer(
		"{lang}", url.QueryEscape(s.lang),
		"{text}", url.QueryEscape(word),
	).Replace(s.template)
}

// Open starts fetching audio for word. The caller must close the body.
// Failures before the first byte are ErrSpeechUnavailable.
func (s *SpeechService) Open(ctx context.Context, word string) (io.ReadCloser, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, invalid("word is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.AudioURL(word), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeechUnavailable, err)
	}
	// The TTS endpoint rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; vocab)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeechUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: upstream status %d", ErrSpeechUnavailable, resp.StatusCode)
	}
	return resp.Body, nil
}
