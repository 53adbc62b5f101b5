package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

//go:generate moq -out mocks/speech_synthesizer.go -pkg mocks -skip-ensure -fmt goimports . SpeechSynthesizer

// SpeechSynthesizer turns one line of text into a remote audio resource
type SpeechSynthesizer interface {
	Synthesize(text, voice string) (audioURL string, err error)
}

// SpeechService implements the synthesis capability over an HTTP TTS API
type SpeechService struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
}

// NewSpeechService creates a new synthesis service client
func NewSpeechService(baseURL, apiKey string, httpClient HTTPClient) *SpeechService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: ttsHTTPTimeout}
	}
	return &SpeechService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ttsRequest represents a request to the synthesis API
type ttsRequest struct {
	Text                 string `json:"text"`
	VoiceID              string `json:"voice_id"`
	SampleRate           int    `json:"sample_rate"`
	EnglishNormalization bool   `json:"english_normalization"`
	LanguageBoost        string `json:"language_boost"`
}

// Synthesize requests speech for the given text and voice, returning the URL
// of the generated audio resource
func (s *SpeechService) Synthesize(text, voice string) (string, error) {
	request := ttsRequest{
		Text:                 text,
		VoiceID:              voice,
		SampleRate:           ttsSampleRate,
		EnglishNormalization: true,
		LanguageBoost:        ttsLanguage,
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("TTS request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		AudioURL string `json:"audio_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode TTS response: %w", err)
	}

	if result.AudioURL == "" {
		return "", fmt.Errorf("no audio in TTS response")
	}

	return result.AudioURL, nil
}
