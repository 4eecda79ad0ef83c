package viseme

import (
	"math"
	"testing"
)

const timeTolerance = 1e-9

func TestSynthesize_EvenSpread(t *testing.T) {
	units := []string{"ㅇ", "ㅏ"}
	events := Synthesize(units, 1.0)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if events[0].Time != 0.0 || events[1].Time != 0.5 {
		t.Errorf("expected starts 0.0/0.5, got %g/%g", events[0].Time, events[1].Time)
	}
	for i, ev := range events {
		if ev.Duration != 0.5 {
			t.Errorf("event %d: expected duration 0.5, got %g", i, ev.Duration)
		}
	}

	if events[0].Viseme != "N" || events[0].Intensity != 1.0 {
		t.Errorf("expected ㅇ → N at full intensity, got %q/%g", events[0].Viseme, events[0].Intensity)
	}
	if events[1].Viseme != "Ah" || events[1].Intensity != 1.0 {
		t.Errorf("expected ㅏ → Ah at full intensity, got %q/%g", events[1].Viseme, events[1].Intensity)
	}
}

func TestSynthesize_UnmappedUnitsAreNeutral(t *testing.T) {
	events := Synthesize([]string{"h", "i", " "}, 3.0)

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Viseme != NeutralViseme {
			t.Errorf("event %d: expected %q, got %q", i, NeutralViseme, ev.Viseme)
		}
		if ev.Intensity != 0.5 {
			t.Errorf("event %d: expected intensity 0.5, got %g", i, ev.Intensity)
		}
	}
}

func TestSynthesize_DurationsSumToTotal(t *testing.T) {
	tests := []struct {
		name  string
		units []string
		total float64
	}{
		{name: "two units", units: []string{"ㅏ", "ㅁ"}, total: 1.0},
		{name: "three units", units: []string{"a", "b", "c"}, total: 2.5},
		{name: "seven units", units: []string{"ㅇ", "ㅏ", "ㄴ", "ㄴ", "ㅕ", "ㅇ", " "}, total: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Synthesize(tt.units, tt.total)
			if len(events) != len(tt.units) {
				t.Fatalf("expected %d events, got %d", len(tt.units), len(events))
			}

			per := tt.total / float64(len(tt.units))
			var sum float64
			for i, ev := range events {
				if math.Abs(ev.Time-float64(i)*per) > timeTolerance {
					t.Errorf("event %d: expected start %g, got %g", i, float64(i)*per, ev.Time)
				}
				if math.Abs(ev.Duration-per) > timeTolerance {
					t.Errorf("event %d: expected duration %g, got %g", i, per, ev.Duration)
				}
				if ev.Phoneme != tt.units[i] {
					t.Errorf("event %d: expected phoneme %q, got %q", i, tt.units[i], ev.Phoneme)
				}
				sum += ev.Duration
			}
			if math.Abs(sum-tt.total) > timeTolerance {
				t.Errorf("durations sum to %g, want %g", sum, tt.total)
			}
		})
	}
}

func TestSynthesize_EmptyUnits(t *testing.T) {
	events := Synthesize(nil, 5.0)
	if len(events) != 0 {
		t.Errorf("expected no events for empty units, got %d", len(events))
	}
}

func TestFallbackTimeline(t *testing.T) {
	want := []Event{
		{Time: 0.0, Duration: 0.1, Viseme: "Neutral", Phoneme: "silence", Intensity: 0.5},
		{Time: 0.1, Duration: 0.1, Viseme: "Ah", Phoneme: "a", Intensity: 1.0},
		{Time: 0.2, Duration: 0.1, Viseme: "Neutral", Phoneme: "silence", Intensity: 0.5},
	}

	got := FallbackTimeline()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
