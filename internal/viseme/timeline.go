package viseme

// Event is one timed mouth shape on a lipsync timeline. Times and
// durations are in seconds. Phoneme carries the originating unit for
// diagnostics only; renderers key off Viseme and Intensity.
type Event struct {
	Time      float64 `json:"time"`
	Duration  float64 `json:"duration"`
	Viseme    string  `json:"viseme"`
	Phoneme   string  `json:"phoneme"`
	Intensity float64 `json:"intensity"`
}

// defaultUnitDuration guards the per-unit division when there are no
// units; with zero units no events are emitted, so it is never visible
// in output.
const defaultUnitDuration = 0.1

// Synthesize spreads the units evenly across totalDuration, one event
// per unit in input order. Units with a table mapping get full
// intensity; unmapped units become Neutral at half intensity.
func Synthesize(units []string, totalDuration float64) []Event {
	perUnit := defaultUnitDuration
	if len(units) > 0 {
		perUnit = totalDuration / float64(len(units))
	}

	events := make([]Event, 0, len(units))
	for i, unit := range units {
		name, ok := LookupUnit(unit)
		intensity := 1.0
		if !ok {
			name = NeutralViseme
			intensity = 0.5
		}
		events = append(events, Event{
			Time:      float64(i) * perUnit,
			Duration:  perUnit,
			Viseme:    name,
			Phoneme:   unit,
			Intensity: intensity,
		})
	}
	return events
}

// FallbackTimeline is the fixed neutral-open-neutral sequence used when
// audio analysis is unavailable. It keeps the avatar's mouth moving
// plausibly instead of surfacing an infrastructure error.
func FallbackTimeline() []Event {
	return []Event{
		{Time: 0.0, Duration: 0.1, Viseme: NeutralViseme, Phoneme: "silence", Intensity: 0.5},
		{Time: 0.1, Duration: 0.1, Viseme: "Ah", Phoneme: "a", Intensity: 1.0},
		{Time: 0.2, Duration: 0.1, Viseme: NeutralViseme, Phoneme: "silence", Intensity: 0.5},
	}
}
