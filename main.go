package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/radio-t/pdf-podcast/podcast"
)

func main() {
	hostName := flag.String("host-name", "Adam", "name of the podcast host")
	guestName := flag.String("guest-name", "Bella", "name of the podcast guest")
	hostVoice := flag.String("host-voice", "Patient_Man", "voice for the podcast host")
	guestVoice := flag.String("guest-voice", "Wise_Woman", "voice for the podcast guest")
	duration := flag.Int("duration", 5, "target podcast duration in minutes (1-20)")
	topic := flag.String("topic", "", "optional topic guidance for the podcast")
	monologue := flag.Bool("monologue", false, "generate a monologue instead of a dialogue")
	outputFile := flag.String("mp3", "podcast.mp3", "output MP3 file path")
	extractorURL := flag.String("extractor-url", "", "document extraction service endpoint")
	llmURL := flag.String("llm-url", "https://api.openai.com/v1/chat/completions", "chat completions endpoint")
	llmModel := flag.String("llm-model", "gpt-4o", "generation model name")
	ttsURL := flag.String("tts-url", "", "speech synthesis service endpoint")
	apiKey := flag.String("apikey", "", "API key (or API_KEY environment variable)")
	configPath := flag.String("config", "", "optional TOML config file")
	dbg := flag.Bool("dbg", false, "debug mode, logs intermediate generation replies")
	flag.Parse()

	setupLog(*dbg)

	config := podcast.Config{
		Documents:       flag.Args(),
		HostName:        *hostName,
		GuestName:       *guestName,
		HostVoice:       *hostVoice,
		GuestVoice:      *guestVoice,
		DurationMinutes: *duration,
		PodcastTopic:    *topic,
		Monologue:       *monologue,
		OutputFile:      *outputFile,
		ExtractorURL:    *extractorURL,
		LLMURL:          *llmURL,
		TTSURL:          *ttsURL,
		APIKey:          *apiKey,
	}

	if *configPath != "" {
		fc, err := loadConfigFile(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		setFlags := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
		mergeFileConfig(&config, llmModel, fc, setFlags)
	}

	if config.APIKey == "" {
		config.APIKey = os.Getenv("API_KEY")
	}

	if err := validateConfig(config); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(config, *llmModel); err != nil {
		log.Fatal().Err(err).Msg("podcast generation failed")
	}
}

// setupLog configures zerolog with console output
func setupLog(dbg bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if dbg {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// run wires the pipeline services together and executes one generation run
func run(config podcast.Config, model string) error {
	runID := uuid.NewString()
	log.Logger = log.With().Str("run", runID[:8]).Logger()

	scratchDir, err := os.MkdirTemp("", "podcast")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratchDir)
	log.Debug().Str("dir", scratchDir).Msg("created scratch directory")

	extractor := NewMarkitdownClient(config.ExtractorURL, config.APIKey, scratchDir, nil)
	ingestor := NewDocumentIngestor(extractor, NewHTTPArticleFetcher(nil))
	planner := NewContentPlanner(NewLLMService(config.LLMURL, config.APIKey, model, nil))
	tts := NewSpeechService(config.TTSURL, config.APIKey, nil)
	downloader := &http.Client{Timeout: defaultHTTPTimeout}

	generator := NewPodcastGenerator(ingestor, planner, tts, NewFFmpegAudioProcessor(), downloader, scratchDir)
	return generator.Generate(config)
}
