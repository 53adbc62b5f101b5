package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/radio-t/pdf-podcast/podcast"
)

// fileConfig mirrors the optional TOML configuration file. Every field is a
// default; explicitly-set command line flags win over file values.
type fileConfig struct {
	HostName        string `toml:"host_name"`
	GuestName       string `toml:"guest_name"`
	HostVoice       string `toml:"host_voice"`
	GuestVoice      string `toml:"guest_voice"`
	DurationMinutes int    `toml:"duration_minutes"`
	OutputFile      string `toml:"output_file"`
	ExtractorURL    string `toml:"extractor_url"`
	LLMURL          string `toml:"llm_url"`
	LLMModel        string `toml:"llm_model"`
	TTSURL          string `toml:"tts_url"`
	APIKey          string `toml:"api_key"`
}

// loadConfigFile reads and decodes a TOML config file
func loadConfigFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

// mergeFileConfig fills config fields from the file for every flag the user
// did not set explicitly
func mergeFileConfig(config *podcast.Config, model *string, fc fileConfig, setFlags map[string]bool) {
	if fc.HostName != "" && !setFlags["host-name"] {
		config.HostName = fc.HostName
	}
	if fc.GuestName != "" && !setFlags["guest-name"] {
		config.GuestName = fc.GuestName
	}
	if fc.HostVoice != "" && !setFlags["host-voice"] {
		config.HostVoice = fc.HostVoice
	}
	if fc.GuestVoice != "" && !setFlags["guest-voice"] {
		config.GuestVoice = fc.GuestVoice
	}
	if fc.DurationMinutes != 0 && !setFlags["duration"] {
		config.DurationMinutes = fc.DurationMinutes
	}
	if fc.OutputFile != "" && !setFlags["mp3"] {
		config.OutputFile = fc.OutputFile
	}
	if fc.ExtractorURL != "" && !setFlags["extractor-url"] {
		config.ExtractorURL = fc.ExtractorURL
	}
	if fc.LLMURL != "" && !setFlags["llm-url"] {
		config.LLMURL = fc.LLMURL
	}
	if fc.LLMModel != "" && !setFlags["llm-model"] {
		*model = fc.LLMModel
	}
	if fc.TTSURL != "" && !setFlags["tts-url"] {
		config.TTSURL = fc.TTSURL
	}
	if fc.APIKey != "" && !setFlags["apikey"] {
		config.APIKey = fc.APIKey
	}
}

// validateConfig checks the assembled configuration before the run starts
func validateConfig(config podcast.Config) error {
	if len(config.Documents) == 0 {
		return fmt.Errorf("at least one document is required")
	}
	if !podcast.ValidVoice(config.HostVoice) {
		return fmt.Errorf("unknown host voice %q", config.HostVoice)
	}
	if !podcast.ValidVoice(config.GuestVoice) {
		return fmt.Errorf("unknown guest voice %q", config.GuestVoice)
	}
	if config.DurationMinutes < minDurationMins || config.DurationMinutes > maxDurationMins {
		return fmt.Errorf("duration must be between %d and %d minutes, got %d",
			minDurationMins, maxDurationMins, config.DurationMinutes)
	}
	if config.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	needsExtractor := false
	for _, doc := range config.Documents {
		if !strings.HasPrefix(doc, "http://") && !strings.HasPrefix(doc, "https://") {
			needsExtractor = true
			break
		}
	}
	if needsExtractor && config.ExtractorURL == "" {
		return fmt.Errorf("extractor service URL is required")
	}
	if config.TTSURL == "" {
		return fmt.Errorf("TTS service URL is required")
	}
	if config.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	return nil
}
