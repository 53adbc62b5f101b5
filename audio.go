package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

//go:generate moq -out mocks/audio_processor.go -pkg mocks -skip-ensure -fmt goimports . AudioProcessor
//go:generate moq -out mocks/command_runner.go -pkg mocks -skip-ensure -fmt goimports . CommandRunner

// AudioProcessor concatenates audio segment files into one artifact
type AudioProcessor interface {
	Concatenate(files []string, outputFile string) error
}

// CommandRunner builds the external command used for concatenation
type CommandRunner interface {
	ConcatCommand(concatFile, outputFile string) *exec.Cmd
}

// defaultCommandRunner builds the real ffmpeg command
type defaultCommandRunner struct{}

// ConcatCommand returns an ffmpeg invocation that stream-copies the segments
// listed in concatFile into outputFile, no re-encoding
func (r *defaultCommandRunner) ConcatCommand(concatFile, outputFile string) *exec.Cmd {
	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", concatFile,
		"-c", "copy",
		outputFile,
	}

	// #nosec G204 -- Arguments are constructed internally, not from external input
	return exec.Command("ffmpeg", args...)
}

// FFmpegAudioProcessor implements audio assembly using ffmpeg
type FFmpegAudioProcessor struct {
	cmdRunner CommandRunner
}

// NewFFmpegAudioProcessor creates a new FFmpeg audio processor
func NewFFmpegAudioProcessor() *FFmpegAudioProcessor {
	return &FFmpegAudioProcessor{cmdRunner: &defaultCommandRunner{}}
}

// Concatenate joins audio files, in the given order, into a single output
// file. A nonzero ffmpeg exit status is a fatal error and no output artifact
// is produced.
func (p *FFmpegAudioProcessor) Concatenate(files []string, outputFile string) error {
	if len(files) == 0 {
		return fmt.Errorf("no audio files to concatenate")
	}

	concatFile, err := createConcatFile(os.TempDir(), uuid.NewString(), files)
	if err != nil {
		return err
	}
	defer os.Remove(concatFile)

	cmd := p.cmdRunner.ConcatCommand(concatFile, outputFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to concatenate audio files: %w", err)
	}

	return nil
}

// createConcatFile writes the ffmpeg concat manifest listing the absolute
// path of every segment in order
func createConcatFile(dir, id string, audioFiles []string) (string, error) {
	concatFile := filepath.Join(dir, "concat_"+id+".txt")
	var concatContent strings.Builder
	for _, file := range audioFiles {
		abs, err := filepath.Abs(file)
		if err != nil {
			return "", fmt.Errorf("failed to resolve segment path: %w", err)
		}
		concatContent.WriteString(fmt.Sprintf("file '%s'\n", abs))
	}
	if err := os.WriteFile(concatFile, []byte(concatContent.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write concat file: %w", err)
	}
	return concatFile, nil
}

// downloadFile fetches url and writes the body to path
func downloadFile(client HTTPClient, url, path string) error {
	req, err := http.NewRequest("GET", url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read download body: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
