package gosemver

import "testing"

// FuzzParse checks that Parse never panics and that every accepted input
// round-trips through the canonical string form.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"0.0.0",
		"1.2.3",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-x.7.z.92",
		"1.0.0+20130313144700",
		"1.0.0-beta+exp.sha.5114f85",
		"1.0.0-0",
		"1.0.0-01",
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"v1.2.3",
		"01.2.3",
		"1.0.0-",
		"1.0.0+",
		"1.0.0-alpha..1",
		" 1.2.3",
		"1.2.3 ",
		"1.0.0-99999999999999999999",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		v, err := Parse(input)
		if err != nil {
			return
		}

		// The grammar admits no non-canonical spellings, so an accepted
		// input is exactly its own canonical form.
		if got := v.String(); got != input {
			t.Errorf("Parse(%q).String() = %q", input, got)
		}

		again, err := Parse(v.String())
		if err != nil {
			t.Fatalf("re-parsing %q failed: %v", v.String(), err)
		}
		if !v.Equal(again) {
			t.Errorf("round-trip of %q lost precedence equality", input)
		}
		if v.Hash() != again.Hash() {
			t.Errorf("round-trip of %q changed the hash", input)
		}
		if v.Major() < 0 || v.Minor() < 0 || v.Patch() < 0 {
			t.Errorf("Parse(%q) produced a negative component: %s", input, v)
		}
	})
}
