package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-t/pdf-podcast/mocks"
)

func TestNewLLMService(t *testing.T) {
	t.Run("with nil http client", func(t *testing.T) {
		service := NewLLMService("https://api.example.com", "test-key", "gpt-4o", nil)
		assert.Equal(t, "test-key", service.apiKey)
		assert.NotNil(t, service.httpClient)
		client, ok := service.httpClient.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 2*time.Minute, client.Timeout)
	})
}

func TestLLMService_Generate(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "POST", req.Method)
				assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

				body, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				var request chatRequest
				require.NoError(t, json.Unmarshal(body, &request))
				assert.Equal(t, "gpt-4o", request.Model)
				require.Len(t, request.Messages, 1)
				assert.Equal(t, "user", request.Messages[0].Role)
				assert.Equal(t, "summarize this", request.Messages[0].Content)

				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(`{"choices": [{"message": {"content": "a fine summary"}}]}`)),
				}, nil
			},
		}

		service := NewLLMService("https://api.example.com", "test-key", "gpt-4o", mockClient)
		reply, err := service.Generate("summarize this")
		require.NoError(t, err)
		assert.Equal(t, "a fine summary", reply)
		assert.Len(t, mockClient.DoCalls(), 1)
	})

	t.Run("non-200 status", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(strings.NewReader(`{"error": "rate limited"}`)),
				}, nil
			},
		}

		service := NewLLMService("https://api.example.com", "test-key", "gpt-4o", mockClient)
		_, err := service.Generate("prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("empty choices", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(`{"choices": []}`)),
				}, nil
			},
		}

		service := NewLLMService("https://api.example.com", "test-key", "gpt-4o", mockClient)
		_, err := service.Generate("prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no response from API")
	})

	t.Run("network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClientMock{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return nil, io.ErrUnexpectedEOF
			},
		}

		service := NewLLMService("https://api.example.com", "test-key", "gpt-4o", mockClient)
		_, err := service.Generate("prompt")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API request failed")
	})
}
