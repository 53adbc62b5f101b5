package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/radio-t/pdf-podcast/podcast"
)

//go:generate moq -out mocks/text_extractor.go -pkg mocks -skip-ensure -fmt goimports . TextExtractor
//go:generate moq -out mocks/article_fetcher.go -pkg mocks -skip-ensure -fmt goimports . ArticleFetcher

// TextExtractor converts a document file into plain/markdown text
type TextExtractor interface {
	Extract(path string) (string, error)
}

// ArticleFetcher retrieves and extracts text from a web page
type ArticleFetcher interface {
	Fetch(url string) (content, title string, err error)
}

// MarkitdownClient extracts document text through the remote extraction service.
// The service replies with a URL of the extracted markdown; the result is
// downloaded into the run's scratch directory and read back.
type MarkitdownClient struct {
	baseURL    string
	apiKey     string
	scratchDir string
	httpClient HTTPClient
}

// NewMarkitdownClient creates a new extraction service client
func NewMarkitdownClient(baseURL, apiKey, scratchDir string, httpClient HTTPClient) *MarkitdownClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: extractHTTPTimeout}
	}
	return &MarkitdownClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		scratchDir: scratchDir,
		httpClient: httpClient,
	}
}

// Extract uploads the document and returns its extracted text
func (c *MarkitdownClient) Extract(path string) (string, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("doc", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("extraction request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Output string `json:"output"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode extraction response: %w", err)
	}
	if result.Output == "" {
		return "", fmt.Errorf("extraction service returned no output")
	}

	// the service hands back a URL of the markdown; round-trip it through the
	// shared scratch file before reading, callers get the in-memory text only
	resultPath := filepath.Join(c.scratchDir, "result.md")
	if err := downloadFile(c.httpClient, result.Output, resultPath); err != nil {
		return "", fmt.Errorf("failed to download extracted text: %w", err)
	}

	text, err := os.ReadFile(resultPath) // #nosec G304 -- path built from our scratch dir
	if err != nil {
		return "", fmt.Errorf("failed to read extracted text: %w", err)
	}

	return string(text), nil
}

// HTTPArticleFetcher implements article fetching using HTTP
type HTTPArticleFetcher struct {
	client *http.Client
}

// NewHTTPArticleFetcher creates a new HTTP article fetcher
func NewHTTPArticleFetcher(client *http.Client) *HTTPArticleFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPArticleFetcher{client: client}
}

// Fetch downloads and extracts text from the given URL
func (f *HTTPArticleFetcher) Fetch(url string) (content, title string, err error) {
	// #nosec G107 -- URL is provided by command-line flag
	resp, err := f.client.Get(url)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to fetch article: status code %d", resp.StatusCode)
	}

	// parse the HTML
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// extract title
	title = doc.Find("title").Text()

	// extract article content
	content = f.extractContent(doc)

	// limit article length for API calls
	if len(content) > maxArticleLength {
		content = content[:maxArticleLength] + "..."
	}

	return content, title, nil
}

// extractContent extracts the main text content from the HTML document
func (f *HTTPArticleFetcher) extractContent(doc *goquery.Document) string {
	var articleText strings.Builder

	// first try to find article content in common containers
	article := doc.Find("article, .article, .post, .content, main")
	if article.Length() > 0 {
		article.Find("p").Each(func(_ int, s *goquery.Selection) {
			articleText.WriteString(s.Text())
			articleText.WriteString("\n\n")
		})
	} else {
		// fallback to all paragraphs
		doc.Find("p").Each(func(_ int, s *goquery.Selection) {
			// skip very short paragraphs which are likely not article content
			if len(s.Text()) > 50 {
				articleText.WriteString(s.Text())
				articleText.WriteString("\n\n")
			}
		})
	}

	return strings.TrimSpace(articleText.String())
}

// DocumentIngestor turns input file paths and URLs into source documents
type DocumentIngestor struct {
	extractor TextExtractor
	fetcher   ArticleFetcher
}

// NewDocumentIngestor creates a new document ingestor
func NewDocumentIngestor(extractor TextExtractor, fetcher ArticleFetcher) *DocumentIngestor {
	return &DocumentIngestor{extractor: extractor, fetcher: fetcher}
}

// Ingest produces one SourceDocument per input, preserving input order. The
// first document is tagged primary, all others supporting. Any extraction
// failure aborts the whole run.
func (d *DocumentIngestor) Ingest(inputs []string) ([]podcast.SourceDocument, error) {
	docs := make([]podcast.SourceDocument, 0, len(inputs))

	for i, input := range inputs {
		log.Info().Int("index", i+1).Int("total", len(inputs)).Str("source", input).Msg("processing document")

		role := podcast.RoleSupporting
		if i == 0 {
			role = podcast.RolePrimary
		}

		if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
			content, title, err := d.fetcher.Fetch(input)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch article %q: %w", input, err)
			}
			if title == "" {
				title = input
			}
			docs = append(docs, podcast.SourceDocument{Name: title, Text: content, Role: role})
			continue
		}

		text, err := d.extractor.Extract(input)
		if err != nil {
			return nil, fmt.Errorf("failed to extract document %q: %w", input, err)
		}
		docs = append(docs, podcast.SourceDocument{Name: filepath.Base(input), Text: text, Role: role})
	}

	return docs, nil
}
