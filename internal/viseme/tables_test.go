package viseme

import "testing"

func TestBlendshapeNames_ExactTable(t *testing.T) {
	want := map[byte]string{
		'A': "Ah", 'B': "Ch", 'C': "Dd", 'D': "E", 'E': "Eh",
		'F': "Ff", 'G': "I", 'H': "O", 'X': "Oh", 'I': "I",
		'J': "Ch", 'K': "Kk", 'L': "L", 'M': "M", 'N': "N",
		'O': "O", 'P': "Pp", 'Q': "Kk", 'R': "Rr", 'S': "S",
		'T': "T", 'U': "U", 'V': "Vv", 'W': "W", 'Y': "I",
		'Z': "S",
	}

	if len(blendshapeNames) != len(want) {
		t.Fatalf("expected %d codes, got %d", len(want), len(blendshapeNames))
	}
	for code, name := range want {
		if got := blendshapeNames[code]; got != name {
			t.Errorf("code %c: expected %q, got %q", code, name, got)
		}
	}
}

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		wantName string
		wantOK   bool
	}{
		{name: "basic vowel", unit: "ㅏ", wantName: "Ah", wantOK: true},
		{name: "vowel sharing code O", unit: "ㅓ", wantName: "O", wantOK: true},
		{name: "vowel sharing code U", unit: "ㅡ", wantName: "U", wantOK: true},
		{name: "plain consonant", unit: "ㅁ", wantName: "M", wantOK: true},
		{name: "tense consonant collapses", unit: "ㄲ", wantName: "Kk", wantOK: true},
		{name: "silent initial maps through N", unit: "ㅇ", wantName: "N", wantOK: true},
		{name: "affricate", unit: "ㅈ", wantName: "Ch", wantOK: true},
		{name: "compound trailing unmapped", unit: "ㄳ", wantName: "", wantOK: false},
		{name: "english letter unmapped", unit: "a", wantName: "", wantOK: false},
		{name: "space unmapped", unit: " ", wantName: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := LookupUnit(tt.unit)
			if ok != tt.wantOK {
				t.Fatalf("LookupUnit(%q) ok = %v, want %v", tt.unit, ok, tt.wantOK)
			}
			if name != tt.wantName {
				t.Errorf("LookupUnit(%q) = %q, want %q", tt.unit, name, tt.wantName)
			}
		})
	}
}

// Every jamo in the Korean table must resolve to a blendshape name, so the
// second lookup stage can never miss for a mapped unit.
func TestKoreanCodes_AllResolve(t *testing.T) {
	for jamo, code := range koreanVisemeCodes {
		if _, ok := blendshapeNames[code]; !ok {
			t.Errorf("jamo %q maps to code %c with no blendshape name", jamo, code)
		}
	}
}
