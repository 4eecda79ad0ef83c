// Package phoneme breaks text into the atomic sound units that drive
// mouth-shape animation. Korean text is split into its constituent jamo
// using the Unicode syllable decomposition formula; other languages fall
// back to a per-letter approximation.
package phoneme

import "unicode"

// Language selects the decomposition strategy.
type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
)

// Precomposed Hangul syllable block (가..힣).
const (
	hangulBase rune = 0xAC00
	hangulLast rune = 0xD7A3
)

// Jamo tables in canonical Unicode order. A syllable decomposes into
// initial/medial/trailing indices via:
//
//	offset   = codepoint - 0xAC00
//	trailing = offset % 28
//	medial   = (offset / 28) % 21
//	initial  = offset / 28 / 21
//
// Index 0 of trailingJamo is the "no trailing consonant" slot and is
// never emitted.
var (
	initialJamo = [19]rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	medialJamo = [21]rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
		'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ',
		'ㅣ',
	}
	trailingJamo = [28]rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// Decompose splits text into phonetic units for the given language.
// It never fails: characters it cannot represent are passed through or
// dropped depending on the language path.
func Decompose(text string, lang Language) []string {
	if lang == LanguageKorean {
		return decomposeKorean(text)
	}
	return decomposeEnglish(text)
}

// decomposeKorean emits jamo for every Hangul syllable: the initial
// consonant when its index is non-zero (index 0 is treated as having no
// explicit initial), the medial vowel always, and the trailing
// consonant when present. Runes outside the syllable block pass through
// verbatim, lower-cased if alphabetic.
func decomposeKorean(text string) []string {
	units := make([]string, 0, len(text))
	for _, r := range text {
		if r < hangulBase || r > hangulLast {
			if unicode.IsLetter(r) {
				r = unicode.ToLower(r)
			}
			units = append(units, string(r))
			continue
		}

		offset := r - hangulBase
		trailing := offset % 28
		medial := (offset / 28) % 21
		initial := offset / 28 / 21

		if initial > 0 {
			units = append(units, string(initialJamo[initial]))
		}
		units = append(units, string(medialJamo[medial]))
		if trailing > 0 {
			units = append(units, string(trailingJamo[trailing]))
		}
	}
	return units
}

// decomposeEnglish is a deliberately lossy letter-level approximation:
// letters are lower-cased, whitespace becomes a single space unit, and
// everything else is dropped.
func decomposeEnglish(text string) []string {
	units := make([]string, 0, len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			units = append(units, string(unicode.ToLower(r)))
		case unicode.IsSpace(r):
			units = append(units, " ")
		}
	}
	return units
}

// Compose rebuilds a precomposed syllable from jamo indices. Used to
// verify decomposition round-trips; the inverse of the formula above.
func Compose(initial, medial, trailing int) rune {
	return hangulBase + rune((initial*21+medial)*28+trailing)
}
