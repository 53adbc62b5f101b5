package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-t/pdf-podcast/mocks"
	"github.com/radio-t/pdf-podcast/podcast"
)

func TestMarkitdownClient_Extract(t *testing.T) {
	t.Run("successful extraction round-trip", func(t *testing.T) {
		var mux http.ServeMux
		server := httptest.NewServer(&mux)
		defer server.Close()

		mux.HandleFunc("/result.md", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# Extracted\n\nsome markdown text"))
		})
		mux.HandleFunc("/extract", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("doc")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "paper.pdf", header.Filename)
			data, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-fake", string(data))
			fmt.Fprintf(w, `{"output": %q}`, server.URL+"/result.md")
		})

		pdfPath := writeTempFile(t, "paper.pdf", "%PDF-fake")
		client := NewMarkitdownClient(server.URL+"/extract", "test-key", t.TempDir(), server.Client())

		text, err := client.Extract(pdfPath)
		require.NoError(t, err)
		assert.Equal(t, "# Extracted\n\nsome markdown text", text)
	})

	t.Run("service error aborts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		pdfPath := writeTempFile(t, "paper.pdf", "%PDF-fake")
		client := NewMarkitdownClient(server.URL, "test-key", t.TempDir(), server.Client())

		_, err := client.Extract(pdfPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("empty output is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		pdfPath := writeTempFile(t, "paper.pdf", "%PDF-fake")
		client := NewMarkitdownClient(server.URL, "test-key", t.TempDir(), server.Client())

		_, err := client.Extract(pdfPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no output")
	})

	t.Run("missing document aborts", func(t *testing.T) {
		client := NewMarkitdownClient("http://localhost:1", "test-key", t.TempDir(), nil)
		_, err := client.Extract("/nonexistent/file.pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open document")
	})
}

// writeTempFile creates a file with the given name and content in a per-test
// temp dir and returns its path
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHTTPArticleFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name            string
		html            string
		statusCode      int
		expectedTitle   string
		expectedContent string
		expectError     bool
	}{
		{
			name: "successful fetch with article tag",
			html: `<html>
				<head><title>Test Article</title></head>
				<body>
					<article>
						<p>This is the first paragraph of the article.</p>
						<p>This is the second paragraph with more content.</p>
					</article>
				</body>
			</html>`,
			statusCode:      http.StatusOK,
			expectedTitle:   "Test Article",
			expectedContent: "This is the first paragraph of the article.\n\nThis is the second paragraph with more content.",
		},
		{
			name: "fallback to all paragraphs",
			html: `<html>
				<head><title>Simple Page</title></head>
				<body>
					<p>Short.</p>
					<p>This is a longer paragraph that should be included in the content extraction.</p>
				</body>
			</html>`,
			statusCode:      http.StatusOK,
			expectedTitle:   "Simple Page",
			expectedContent: "This is a longer paragraph that should be included in the content extraction.",
		},
		{
			name:        "error status code",
			html:        "<html><body>Not Found</body></html>",
			statusCode:  http.StatusNotFound,
			expectError: true,
		},
		{
			name: "content length limit",
			html: `<html>
				<head><title>Long Article</title></head>
				<body>
					<article>
						<p>` + strings.Repeat("A", 9000) + `</p>
					</article>
				</body>
			</html>`,
			statusCode:      http.StatusOK,
			expectedTitle:   "Long Article",
			expectedContent: strings.Repeat("A", maxArticleLength) + "...",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.html))
			}))
			defer server.Close()

			fetcher := NewHTTPArticleFetcher(server.Client())
			content, title, err := fetcher.Fetch(server.URL)

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedTitle, title)
				assert.Equal(t, tc.expectedContent, strings.TrimSpace(content))
			}
		})
	}
}

func TestDocumentIngestor_Ingest(t *testing.T) {
	t.Run("order and roles preserved", func(t *testing.T) {
		mockExtractor := &mocks.TextExtractorMock{
			ExtractFunc: func(path string) (string, error) {
				return "text of " + path, nil
			},
		}

		ingestor := NewDocumentIngestor(mockExtractor, nil)
		docs, err := ingestor.Ingest([]string{"/docs/first.pdf", "/docs/second.pdf", "/docs/third.pdf"})
		require.NoError(t, err)

		require.Len(t, docs, 3)
		assert.Equal(t, "first.pdf", docs[0].Name)
		assert.Equal(t, podcast.RolePrimary, docs[0].Role)
		assert.Equal(t, "text of /docs/first.pdf", docs[0].Text)
		assert.Equal(t, "second.pdf", docs[1].Name)
		assert.Equal(t, podcast.RoleSupporting, docs[1].Role)
		assert.Equal(t, "third.pdf", docs[2].Name)
		assert.Equal(t, podcast.RoleSupporting, docs[2].Role)

		// extraction happened once per input, in input order
		calls := mockExtractor.ExtractCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, "/docs/first.pdf", calls[0].Path)
		assert.Equal(t, "/docs/third.pdf", calls[2].Path)
	})

	t.Run("url input goes through the article fetcher", func(t *testing.T) {
		mockExtractor := &mocks.TextExtractorMock{
			ExtractFunc: func(path string) (string, error) { return "pdf text", nil },
		}
		mockFetcher := &mocks.ArticleFetcherMock{
			FetchFunc: func(url string) (string, string, error) {
				return "article body", "Article Title", nil
			},
		}

		ingestor := NewDocumentIngestor(mockExtractor, mockFetcher)
		docs, err := ingestor.Ingest([]string{"https://example.com/post", "/docs/extra.pdf"})
		require.NoError(t, err)

		require.Len(t, docs, 2)
		assert.Equal(t, "Article Title", docs[0].Name)
		assert.Equal(t, "article body", docs[0].Text)
		assert.Equal(t, podcast.RolePrimary, docs[0].Role)
		assert.Equal(t, podcast.RoleSupporting, docs[1].Role)
		assert.Len(t, mockFetcher.FetchCalls(), 1)
		assert.Len(t, mockExtractor.ExtractCalls(), 1)
	})

	t.Run("extraction failure aborts the whole run", func(t *testing.T) {
		mockExtractor := &mocks.TextExtractorMock{
			ExtractFunc: func(path string) (string, error) {
				if strings.Contains(path, "bad") {
					return "", fmt.Errorf("conversion failed")
				}
				return "ok", nil
			},
		}

		ingestor := NewDocumentIngestor(mockExtractor, nil)
		docs, err := ingestor.Ingest([]string{"/docs/good.pdf", "/docs/bad.pdf", "/docs/never.pdf"})
		require.Error(t, err)
		assert.Nil(t, docs)
		assert.Contains(t, err.Error(), "bad.pdf")
		// no partial-document degradation, later inputs never attempted
		assert.Len(t, mockExtractor.ExtractCalls(), 2)
	})
}
