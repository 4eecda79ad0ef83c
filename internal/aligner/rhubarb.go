// Package aligner wraps the external forced-alignment tool that derives
// precise viseme timing from recorded audio. Rhubarb Lip Sync is the
// only implementation; it is treated as a black box behind the Aligner
// interface so failure handling lives at a single seam.
// https://github.com/DanielSWolf/rhubarb-lip-sync
package aligner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raspverry/desktop-partner/internal/viseme"
)

// Common errors
var (
	// ErrStageAudio means the audio buffer could not be written to a
	// transient file at all. Callers treat this as catastrophic rather
	// than falling back.
	ErrStageAudio = errors.New("failed to stage audio artifact")

	// ErrAlignFailed covers a non-zero exit or a timed-out invocation.
	ErrAlignFailed = errors.New("aligner invocation failed")

	// ErrMalformedOutput means the tool exited cleanly but its JSON
	// payload was unusable.
	ErrMalformedOutput = errors.New("malformed aligner output")
)

// Aligner converts an audio buffer into timed viseme events.
type Aligner interface {
	Align(ctx context.Context, audio []byte) ([]viseme.Event, error)
}

// RhubarbConfig holds Rhubarb invocation settings.
type RhubarbConfig struct {
	BinaryPath string        `json:"binary_path"` // rhubarb executable
	WorkDir    string        `json:"work_dir"`    // where transient .wav files are staged
	Timeout    time.Duration `json:"timeout"`     // bounded wait on the process
}

// DefaultRhubarbConfig returns sensible defaults: the binary resolved
// from PATH and the system temp dir for staging.
func DefaultRhubarbConfig() *RhubarbConfig {
	return &RhubarbConfig{
		BinaryPath: "rhubarb",
		WorkDir:    os.TempDir(),
		Timeout:    30 * time.Second,
	}
}

// Rhubarb invokes the rhubarb CLI with JSON output and parses its mouth
// cues. One invocation attempt per request; no retries.
type Rhubarb struct {
	logger zerolog.Logger
	config *RhubarbConfig
}

// NewRhubarb creates a Rhubarb aligner.
func NewRhubarb(logger zerolog.Logger, config *RhubarbConfig) *Rhubarb {
	if config == nil {
		config = DefaultRhubarbConfig()
	}
	return &Rhubarb{
		logger: logger.With().Str("component", "rhubarb").Logger(),
		config: config,
	}
}

// mouthCue is one timed entry in rhubarb's JSON output.
type mouthCue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Value string  `json:"value"`
}

type rhubarbOutput struct {
	MouthCues []mouthCue `json:"mouthCues"`
}

// Align stages the audio to a private temp file, runs rhubarb on it,
// and converts the mouth cues into viseme events in record order. The
// cue labels are already in viseme-name space and are used verbatim.
// The temp file is removed on every exit path.
func (r *Rhubarb) Align(ctx context.Context, audio []byte) ([]viseme.Event, error) {
	audioPath := filepath.Join(r.config.WorkDir, fmt.Sprintf("lipsync-%s.wav", uuid.NewString()))
	if err := os.WriteFile(audioPath, audio, 0o600); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStageAudio, err)
	}
	defer os.Remove(audioPath)

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	startTime := time.Now()

	cmd := exec.CommandContext(ctx, r.config.BinaryPath, "-f", "json", audioPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Warn().
			Err(err).
			Str("stderr", stderr.String()).
			Msg("Rhubarb invocation failed")
		return nil, fmt.Errorf("%w: %v", ErrAlignFailed, err)
	}

	var parsed rhubarbOutput
	if err := json.Unmarshal(stdout.Bytes(), &parsed); err != nil {
		r.logger.Warn().
			Err(err).
			Int("stdoutBytes", stdout.Len()).
			Msg("Rhubarb output unparseable")
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	events := make([]viseme.Event, 0, len(parsed.MouthCues))
	for _, cue := range parsed.MouthCues {
		events = append(events, viseme.Event{
			Time:      cue.Start,
			Duration:  cue.End - cue.Start,
			Viseme:    cue.Value,
			Phoneme:   cue.Value,
			Intensity: 1.0,
		})
	}

	r.logger.Debug().
		Int("audioBytes", len(audio)).
		Int("cues", len(events)).
		Dur("processingTime", time.Since(startTime)).
		Msg("Rhubarb alignment complete")

	return events, nil
}
