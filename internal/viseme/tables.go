// Package viseme maps phonetic units to mouth-shape names and lays them
// out on a timeline. The names are VRM blendshape identifiers consumed
// directly by the avatar renderer.
package viseme

// NeutralViseme is the resting mouth shape, substituted for any unit
// without a table entry.
const NeutralViseme = "Neutral"

// blendshapeNames maps internal single-letter viseme codes to VRM
// blendshape names. Several codes intentionally share a name: voicing
// distinctions that look identical on the mouth are collapsed.
var blendshapeNames = map[byte]string{
	'A': "Ah",
	'B': "Ch",
	'C': "Dd",
	'D': "E",
	'E': "Eh",
	'F': "Ff",
	'G': "I",
	'H': "O",
	'X': "Oh",
	'I': "I",
	'J': "Ch",
	'K': "Kk",
	'L': "L",
	'M': "M",
	'N': "N",
	'O': "O",
	'P': "Pp",
	'Q': "Kk",
	'R': "Rr",
	'S': "S",
	'T': "T",
	'U': "U",
	'V': "Vv",
	'W': "W",
	'Y': "I",
	'Z': "S",
}

// koreanVisemeCodes maps each Hangul jamo to a viseme code. Tense and
// aspirated consonants collapse onto their plain counterparts, and the
// vowel inventory folds into the five basic mouth openings. Compound
// trailing consonants (ㄳ, ㄵ, ...) have no entry and resolve to Neutral.
var koreanVisemeCodes = map[string]byte{
	// Vowels
	"ㅏ": 'A', "ㅑ": 'A', "ㅓ": 'O', "ㅕ": 'O',
	"ㅗ": 'O', "ㅛ": 'O', "ㅜ": 'U', "ㅠ": 'U',
	"ㅡ": 'U', "ㅣ": 'I', "ㅐ": 'A', "ㅒ": 'A',
	"ㅔ": 'E', "ㅖ": 'E', "ㅚ": 'O', "ㅟ": 'U',
	"ㅢ": 'U', "ㅘ": 'A', "ㅙ": 'A', "ㅝ": 'U',
	"ㅞ": 'U',

	// Consonants
	"ㄱ": 'K', "ㄴ": 'N', "ㄷ": 'T', "ㄹ": 'L',
	"ㅁ": 'M', "ㅂ": 'B', "ㅅ": 'S', "ㅇ": 'N',
	"ㅈ": 'J', "ㅊ": 'C', "ㅋ": 'K', "ㅌ": 'T',
	"ㅍ": 'P', "ㅎ": 'H', "ㄲ": 'K', "ㄸ": 'T',
	"ㅃ": 'B', "ㅆ": 'S', "ㅉ": 'J',
}

// LookupUnit resolves a phonetic unit to its blendshape name through the
// two-stage jamo → code → name lookup. ok is false when either stage
// misses; callers substitute NeutralViseme with reduced intensity.
func LookupUnit(unit string) (name string, ok bool) {
	code, ok := koreanVisemeCodes[unit]
	if !ok {
		return "", false
	}
	name, ok = blendshapeNames[code]
	if !ok {
		return "", false
	}
	return name, true
}
