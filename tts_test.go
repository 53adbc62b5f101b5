package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-t/pdf-podcast/mocks"
)

func TestSpeechService_Synthesize(t *testing.T) {
	t.Run("request carries fixed synthesis parameters", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))

				body, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				var request ttsRequest
				require.NoError(t, json.Unmarshal(body, &request))
				assert.Equal(t, "Welcome to the show", request.Text)
				assert.Equal(t, "Patient_Man", request.VoiceID)
				assert.Equal(t, 44100, request.SampleRate)
				assert.True(t, request.EnglishNormalization)
				assert.Equal(t, "English", request.LanguageBoost)

				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(`{"audio_url": "https://cdn.example.com/a0.mp3"}`)),
				}, nil
			},
		}

		service := NewSpeechService("https://tts.example.com", "test-key", mockClient)
		audioURL, err := service.Synthesize("Welcome to the show", "Patient_Man")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a0.mp3", audioURL)
	})

	t.Run("non-200 status", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(strings.NewReader("boom")),
				}, nil
			},
		}

		service := NewSpeechService("https://tts.example.com", "test-key", mockClient)
		_, err := service.Synthesize("text", "Patient_Man")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("missing audio url", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(`{}`)),
				}, nil
			},
		}

		service := NewSpeechService("https://tts.example.com", "test-key", mockClient)
		_, err := service.Synthesize("text", "Patient_Man")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no audio in TTS response")
	})

	t.Run("network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return nil, io.ErrUnexpectedEOF
			},
		}

		service := NewSpeechService("https://tts.example.com", "test-key", mockClient)
		_, err := service.Synthesize("text", "Patient_Man")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TTS request failed")
	})
}
