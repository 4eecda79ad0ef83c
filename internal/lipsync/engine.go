// Package lipsync is the top-level entry point for timeline generation.
// It routes text requests through decomposition and synthesis, audio
// requests through the external aligner, and shapes both into the same
// result contract.
package lipsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/raspverry/desktop-partner/internal/aligner"
	"github.com/raspverry/desktop-partner/internal/metrics"
	"github.com/raspverry/desktop-partner/internal/phoneme"
	"github.com/raspverry/desktop-partner/internal/viseme"
)

// audioCueDuration is the nominal length of one aligner cue when
// reporting total audio-path duration.
const audioCueDuration = 0.1

// Result is the response contract shared by both generation paths.
// Visemes is never nil so a failed result still serializes as [].
type Result struct {
	Success  bool           `json:"success"`
	Visemes  []viseme.Event `json:"visemes"`
	Duration float64        `json:"duration"`
	Message  string         `json:"message"`
}

// Engine generates lipsync timelines. It holds no per-request state, so
// a single Engine serves concurrent requests without locking.
type Engine struct {
	aligner aligner.Aligner
	logger  zerolog.Logger
}

// NewEngine creates a lipsync engine backed by the given aligner.
func NewEngine(al aligner.Aligner, logger zerolog.Logger) *Engine {
	return &Engine{
		aligner: al,
		logger:  logger.With().Str("component", "lipsync").Logger(),
	}
}

// FromText spreads the text's phonetic units evenly over the requested
// duration. It only fails on an invalid duration; empty text yields an
// empty but successful timeline.
func (e *Engine) FromText(ctx context.Context, text string, lang phoneme.Language, duration float64) *Result {
	if duration <= 0 {
		return &Result{
			Success: false,
			Visemes: []viseme.Event{},
			Message: fmt.Sprintf("lipsync generation failed: duration must be positive, got %g", duration),
		}
	}

	units := phoneme.Decompose(text, lang)
	events := viseme.Synthesize(units, duration)
	metrics.VisemesGenerated.Add(float64(len(events)))

	e.logger.Debug().
		Str("language", string(lang)).
		Int("units", len(units)).
		Float64("duration", duration).
		Msg("Text lipsync generated")

	return &Result{
		Success:  true,
		Visemes:  events,
		Duration: duration,
		Message:  "lipsync generated",
	}
}

// FromAudio runs the forced aligner on the audio buffer. Aligner
// failures degrade to the fixed fallback timeline and still report
// success; only failing to stage the audio artifact at all is surfaced
// as a failed result.
func (e *Engine) FromAudio(ctx context.Context, audio []byte) *Result {
	events, err := e.aligner.Align(ctx, audio)
	if err != nil {
		if errors.Is(err, aligner.ErrStageAudio) {
			e.logger.Error().Err(err).Msg("Audio lipsync analysis failed")
			return &Result{
				Success: false,
				Visemes: []viseme.Event{},
				Message: fmt.Sprintf("audio lipsync analysis failed: %v", err),
			}
		}

		e.logger.Warn().Err(err).Msg("Aligner unavailable, using fallback timeline")
		metrics.AlignerFallbacks.Inc()
		events = viseme.FallbackTimeline()
	}

	metrics.VisemesGenerated.Add(float64(len(events)))

	return &Result{
		Success:  true,
		Visemes:  events,
		Duration: float64(len(events)) * audioCueDuration,
		Message:  "audio lipsync analysis complete",
	}
}
