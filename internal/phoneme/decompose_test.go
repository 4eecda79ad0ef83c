package phoneme

import (
	"reflect"
	"testing"
)

func TestDecompose_KoreanSyllables(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "syllable with initial and medial",
			text: "안", // ㅇ + ㅏ + ㄴ
			want: []string{"ㅇ", "ㅏ", "ㄴ"},
		},
		{
			name: "syllable without trailing",
			text: "나", // ㄴ + ㅏ
			want: []string{"ㄴ", "ㅏ"},
		},
		{
			name: "initial index zero is not emitted",
			text: "가", // initial index 0 (ㄱ), medial ㅏ
			want: []string{"ㅏ"},
		},
		{
			name: "two syllables in order",
			text: "안녕",
			want: []string{"ㅇ", "ㅏ", "ㄴ", "ㄴ", "ㅕ", "ㅇ"},
		},
		{
			name: "non-hangul passes through lower-cased",
			text: "안A",
			want: []string{"ㅇ", "ㅏ", "ㄴ", "a"},
		},
		{
			name: "space and punctuation pass through",
			text: "안 .",
			want: []string{"ㅇ", "ㅏ", "ㄴ", " ", "."},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.text, LanguageKorean)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decompose(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDecompose_English(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "letters lower-cased",
			text: "Hi",
			want: []string{"h", "i"},
		},
		{
			name: "whitespace becomes space unit",
			text: "a b",
			want: []string{"a", " ", "b"},
		},
		{
			name: "punctuation and digits dropped",
			text: "hey, 2!",
			want: []string{"h", "e", "y", " "},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.text, LanguageEnglish)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decompose(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Every precomposed syllable must decompose to the jamo its indices name
// and recompose to the original codepoint.
func TestDecompose_RoundTripAllSyllables(t *testing.T) {
	for r := hangulBase; r <= hangulLast; r++ {
		offset := r - hangulBase
		trailing := int(offset % 28)
		medial := int((offset / 28) % 21)
		initial := int(offset / 28 / 21)

		if got := Compose(initial, medial, trailing); got != r {
			t.Fatalf("Compose(%d,%d,%d) = %q, want %q", initial, medial, trailing, got, r)
		}

		want := make([]string, 0, 3)
		if initial > 0 {
			want = append(want, string(initialJamo[initial]))
		}
		want = append(want, string(medialJamo[medial]))
		if trailing > 0 {
			want = append(want, string(trailingJamo[trailing]))
		}

		got := Decompose(string(r), LanguageKorean)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Decompose(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestJamoTableSizes(t *testing.T) {
	if len(initialJamo) != 19 {
		t.Errorf("expected 19 initial jamo, got %d", len(initialJamo))
	}
	if len(medialJamo) != 21 {
		t.Errorf("expected 21 medial jamo, got %d", len(medialJamo))
	}
	if len(trailingJamo) != 28 {
		t.Errorf("expected 28 trailing jamo, got %d", len(trailingJamo))
	}
}
