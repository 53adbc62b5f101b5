package podcast

// DocumentRole tags a source document as the main subject or as extra context
type DocumentRole string

// Document roles: the first ingested document is the primary subject of the
// podcast, every other document is supporting context
const (
	RolePrimary    DocumentRole = "primary"
	RoleSupporting DocumentRole = "supporting"
)

// SourceDocument holds the extracted text of one input document
type SourceDocument struct {
	Name string
	Text string
	Role DocumentRole
}

// DialogueLine is a single utterance in the script; line order within the
// script is significant and preserved through synthesis and assembly
type DialogueLine struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// Script is the structured conversation parsed from the generation reply
type Script struct {
	Title   string
	Summary string
	Lines   []DialogueLine
}

// Speakers returns the distinct speaker labels of the script as an unordered set
func (s Script) Speakers() map[string]struct{} {
	speakers := make(map[string]struct{})
	for _, line := range s.Lines {
		speakers[line.Speaker] = struct{}{}
	}
	return speakers
}

// VoiceMap assigns a synthesis voice to each distinct speaker label
type VoiceMap map[string]string

// Config represents the application configuration
type Config struct {
	Documents       []string // PDF paths or http(s) article URLs, order matters
	HostName        string
	GuestName       string
	HostVoice       string
	GuestVoice      string
	DurationMinutes int
	PodcastTopic    string // optional topic guidance
	Monologue       bool
	OutputFile      string // output MP3 file path

	ExtractorURL string // document extraction service endpoint
	LLMURL       string // chat completions endpoint
	TTSURL       string // speech synthesis endpoint
	APIKey       string
}

// GenerateScriptParams contains parameters for script generation
type GenerateScriptParams struct {
	Documents       []SourceDocument
	HostName        string
	GuestName       string
	DurationMinutes int
	PodcastTopic    string
	Monologue       bool
}
