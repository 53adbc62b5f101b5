package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/radio-t/pdf-podcast/podcast"
)

//go:generate moq -out mocks/script_generator.go -pkg mocks -skip-ensure -fmt goimports . ScriptGenerator

// ScriptGenerator produces a structured script from ingested documents
type ScriptGenerator interface {
	GenerateScript(params podcast.GenerateScriptParams) (podcast.Script, error)
}

// speechResult carries a single synthesis outcome back to the ordered join
type speechResult struct {
	audioURL string
	err      error
}

// PodcastGenerator drives the pipeline: ingest documents, plan the script,
// map voices, synthesize every line and assemble the final audio file
type PodcastGenerator struct {
	ingestor   *DocumentIngestor
	planner    ScriptGenerator
	tts        SpeechSynthesizer
	audio      AudioProcessor
	downloader HTTPClient
	scratchDir string
}

// NewPodcastGenerator creates a new podcast generator
func NewPodcastGenerator(ingestor *DocumentIngestor, planner ScriptGenerator, tts SpeechSynthesizer,
	audio AudioProcessor, downloader HTTPClient, scratchDir string) *PodcastGenerator {
	return &PodcastGenerator{
		ingestor:   ingestor,
		planner:    planner,
		tts:        tts,
		audio:      audio,
		downloader: downloader,
		scratchDir: scratchDir,
	}
}

// Generate runs the whole pipeline for the given configuration. Any stage
// failure aborts the run and no output artifact is produced.
func (g *PodcastGenerator) Generate(config podcast.Config) error {
	docs, err := g.ingestor.Ingest(config.Documents)
	if err != nil {
		return fmt.Errorf("error ingesting documents: %w", err)
	}
	log.Info().Int("documents", len(docs)).Msg("documents ingested")

	script, err := g.planner.GenerateScript(podcast.GenerateScriptParams{
		Documents:       docs,
		HostName:        config.HostName,
		GuestName:       config.GuestName,
		DurationMinutes: config.DurationMinutes,
		PodcastTopic:    config.PodcastTopic,
		Monologue:       config.Monologue,
	})
	if err != nil {
		return fmt.Errorf("error generating script: %w", err)
	}
	log.Info().Str("title", script.Title).Int("lines", len(script.Lines)).Msg("script generated")

	voices := podcast.BuildVoiceMap(script, config.HostVoice, config.GuestVoice, config.Monologue)

	files, err := g.synthesize(script, voices)
	if err != nil {
		return fmt.Errorf("error synthesizing speech: %w", err)
	}

	if err := g.audio.Concatenate(files, config.OutputFile); err != nil {
		return fmt.Errorf("error assembling podcast: %w", err)
	}

	log.Info().Str("output", config.OutputFile).Msg("podcast saved")
	return nil
}

// synthesize dispatches one synthesis request per line without waiting
// between dispatches, then collects the results in original line order and
// downloads each audio resource to an indexed segment file. Line order is
// preserved end-to-end: segment i always holds line i.
func (g *PodcastGenerator) synthesize(script podcast.Script, voices podcast.VoiceMap) ([]string, error) {
	results := make([]chan speechResult, len(script.Lines))

	for i, line := range script.Lines {
		ch := make(chan speechResult, 1)
		results[i] = ch
		go func(text, voice string, ch chan<- speechResult) {
			audioURL, err := g.tts.Synthesize(text, voice)
			ch <- speechResult{audioURL: audioURL, err: err}
		}(line.Text, voices[line.Speaker], ch)
	}

	files := make([]string, 0, len(script.Lines))
	for i, ch := range results {
		res := <-ch
		if res.err != nil {
			return nil, fmt.Errorf("failed to synthesize line %d: %w", i, res.err)
		}

		filename := filepath.Join(g.scratchDir, fmt.Sprintf("segment_%03d.mp3", i))
		if err := downloadFile(g.downloader, res.audioURL, filename); err != nil {
			return nil, fmt.Errorf("failed to download audio for line %d: %w", i, err)
		}
		files = append(files, filename)

		log.Info().Int("line", i+1).Int("total", len(script.Lines)).
			Str("speaker", script.Lines[i].Speaker).Msg("segment ready")
	}

	return files, nil
}
