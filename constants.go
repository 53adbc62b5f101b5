package main

import "time"

// http and network timeouts
const (
	defaultHTTPTimeout = 30 * time.Second
	llmHTTPTimeout     = 2 * time.Minute
	ttsHTTPTimeout     = 2 * time.Minute
	extractHTTPTimeout = 5 * time.Minute
)

// content processing limits
const (
	maxCharsPerDocument = 5000
	maxContextLength    = 24000
	maxArticleLength    = 8000
	truncationMarker    = "\n\n[truncated due to length]\n"
)

// generation parameters
const (
	llmTemperature = 0.7
	llmMaxTokens   = 4000
	wordsPerMinute = 150
)

// synthesis parameters
const (
	ttsSampleRate   = 44100
	ttsLanguage     = "English"
	minDurationMins = 1
	maxDurationMins = 20
)
