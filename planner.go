package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/radio-t/pdf-podcast/podcast"
)

//go:generate moq -out mocks/text_generator.go -pkg mocks -skip-ensure -fmt goimports . TextGenerator

// TextGenerator produces a text completion for a single prompt
type TextGenerator interface {
	Generate(prompt string) (string, error)
}

// ContentPlanner turns ingested documents into a structured podcast script
// through three sequential generation calls: summarize, outline, script.
// Each prompt embeds the previous call's raw reply, so no stage can start
// before the prior reply is fully available.
type ContentPlanner struct {
	llm TextGenerator
}

// NewContentPlanner creates a new content planner
func NewContentPlanner(llm TextGenerator) *ContentPlanner {
	return &ContentPlanner{llm: llm}
}

// GenerateScript runs the summarize-outline-script chain and parses the final
// reply into a Script. Any generation or parse failure aborts the run.
func (p *ContentPlanner) GenerateScript(params podcast.GenerateScriptParams) (podcast.Script, error) {
	context := buildDocumentContext(params.Documents)

	summary, err := p.llm.Generate(summaryPrompt(context))
	if err != nil {
		return podcast.Script{}, fmt.Errorf("failed to generate summary: %w", err)
	}
	log.Debug().Str("summary", summary).Msg("document summary")

	outline, err := p.llm.Generate(outlinePrompt(summary, params))
	if err != nil {
		return podcast.Script{}, fmt.Errorf("failed to generate outline: %w", err)
	}
	log.Debug().Str("outline", outline).Msg("podcast outline")

	reply, err := p.llm.Generate(scriptPrompt(outline, summary, params))
	if err != nil {
		return podcast.Script{}, fmt.Errorf("failed to generate script: %w", err)
	}
	log.Debug().Str("reply", reply).Msg("raw script reply")

	script, err := parseScript(reply)
	if err != nil {
		return podcast.Script{}, fmt.Errorf("failed to parse script: %w", err)
	}

	return script, nil
}

// buildDocumentContext concatenates each document's name and the first 5000
// characters of its text, capping the combined result at exactly 24000
// characters plus a truncation marker
func buildDocumentContext(docs []podcast.SourceDocument) string {
	var b strings.Builder
	for _, doc := range docs {
		text := doc.Text
		if len(text) > maxCharsPerDocument {
			text = text[:maxCharsPerDocument]
		}
		b.WriteString(fmt.Sprintf("\n\nDocument: %s\n%s\n\n", doc.Name, text))
	}

	context := b.String()
	if len(context) > maxContextLength {
		context = context[:maxContextLength] + truncationMarker
	}
	return context
}

// summaryPrompt asks for a 3-5 paragraph summary of the documents
func summaryPrompt(documentContext string) string {
	return fmt.Sprintf(`Summarize the main points from these documents. Focus on key facts, figures, and insights:

%s

Provide a concise summary in 3-5 paragraphs that captures the essential information.`, documentContext)
}

// outlinePrompt asks for a 5-10 segment outline based on the summary
func outlinePrompt(summary string, params podcast.GenerateScriptParams) string {
	format := "podcast conversation between a host and guest"
	speakers := fmt.Sprintf("The host is named %s and the guest is named %s.", params.HostName, params.GuestName)
	subject := "The conversation"
	if params.Monologue {
		format = "monologue"
		speakers = fmt.Sprintf("The speaker is named %s.", params.HostName)
		subject = "The monologue"
	}

	topic := ""
	if params.PodcastTopic != "" {
		topic = fmt.Sprintf("The podcast should focus on: %s\n", params.PodcastTopic)
	}

	return fmt.Sprintf(`Based on the following summary of documents:

%s

Create an outline for a %s that discusses these documents.
%s
%s should last approximately %d minutes.
%s
Create a detailed outline with 5-10 main points or segments, where each segment includes a topic and key points to discuss.`,
		summary, format, speakers, subject, params.DurationMinutes, topic)
}

// scriptPrompt asks for the full script as a strict JSON object
func scriptPrompt(outline, summary string, params podcast.GenerateScriptParams) string {
	targetWords := params.DurationMinutes * wordsPerMinute

	if params.Monologue {
		return fmt.Sprintf(`You will create a monologue podcast script for %s based on this outline:

%s

The monologue should:
1. Be approximately %d minutes in length (about %d words)
2. Feel conversational and engaging
3. Reference information from the documents summarized as: %s
4. Have a clear introduction, body, and conclusion
5. Use a natural speaking style

Format the monologue as follows:

{"title": "[PODCAST TITLE]", "summary": "[BRIEF SUMMARY]", "lines": [
  {"text": "[First line of speech]", "speaker": "%s"},
  {"text": "[Next line of speech]", "speaker": "%s"},
  ...
]}

Return ONLY the formatted JSON with no additional text or explanation.`,
			params.HostName, outline, params.DurationMinutes, targetWords, summary, params.HostName, params.HostName)
	}

	return fmt.Sprintf(`You will create a podcast dialogue script between %s and %s based on this outline:

%s

The conversation should:
1. Be approximately %d minutes in length (about %d words)
2. Feel natural and conversational
3. Reference information from the documents summarized as: %s
4. Have the host ask questions and guide the conversation
5. Have the guest provide expertise and insights
6. Include back-and-forth exchanges that sound realistic

Format the dialogue as follows:

{"title": "[PODCAST TITLE]", "summary": "[BRIEF SUMMARY]", "lines": [
  {"text": "[First line of speech]", "speaker": "[%s or %s]"},
  {"text": "[Next line of speech]", "speaker": "[%s or %s]"},
  ...
]}

Return ONLY the formatted JSON with no additional text or explanation.`,
		params.HostName, params.GuestName, outline, params.DurationMinutes, targetWords, summary,
		params.HostName, params.GuestName, params.HostName, params.GuestName)
}

// extractJSON extracts the JSON payload from a generation reply. The reply
// may wrap the payload in a fenced code block: a json-labeled fence wins,
// then any fence, otherwise the whole reply is the payload verbatim.
func extractJSON(content string) string {
	if strings.Contains(content, "```json") {
		after := strings.SplitN(content, "```json", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	if strings.Contains(content, "```") {
		parts := strings.SplitN(content, "```", 3)
		return strings.TrimSpace(parts[1])
	}
	return content
}

// parseScript decodes a generation reply into a Script. Malformed JSON,
// missing keys, wrong types or an empty lines array are all fatal.
func parseScript(reply string) (podcast.Script, error) {
	payload := extractJSON(reply)

	var raw struct {
		Title   *string `json:"title"`
		Summary *string `json:"summary"`
		Lines   *[]struct {
			Text    *string `json:"text"`
			Speaker *string `json:"speaker"`
		} `json:"lines"`
	}

	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return podcast.Script{}, fmt.Errorf("failed to parse response as JSON: %w", err)
	}

	if raw.Title == nil {
		return podcast.Script{}, fmt.Errorf("script is missing required key %q", "title")
	}
	if raw.Summary == nil {
		return podcast.Script{}, fmt.Errorf("script is missing required key %q", "summary")
	}
	if raw.Lines == nil {
		return podcast.Script{}, fmt.Errorf("script is missing required key %q", "lines")
	}
	if len(*raw.Lines) == 0 {
		return podcast.Script{}, fmt.Errorf("script has no lines")
	}

	lines := make([]podcast.DialogueLine, 0, len(*raw.Lines))
	for i, line := range *raw.Lines {
		if line.Text == nil || line.Speaker == nil {
			return podcast.Script{}, fmt.Errorf("script line %d is missing text or speaker", i)
		}
		if *line.Text == "" {
			return podcast.Script{}, fmt.Errorf("script line %d has empty text", i)
		}
		lines = append(lines, podcast.DialogueLine{Text: *line.Text, Speaker: *line.Speaker})
	}

	return podcast.Script{Title: *raw.Title, Summary: *raw.Summary, Lines: lines}, nil
}
