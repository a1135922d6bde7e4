package domain

import "testing"

// FuzzParseArticleID checks that parsing never panics on arbitrary input and
// that any accepted value round-trips through its string form.
func FuzzParseArticleID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE articles;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseArticleID(input)
		if err != nil {
			return
		}
		roundTrip, err := ParseArticleID(id.String())
		if err != nil {
			t.Errorf("accepted ID failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Error("round-trip changed ID value")
		}
	})
}

// FuzzUnmarshalText exercises the JSON/text decode path with raw bytes.
func FuzzUnmarshalText(f *testing.F) {
	f.Add([]byte("550e8400-e29b-41d4-a716-446655440000"))
	f.Add([]byte(""))
	f.Add([]byte("invalid"))

	f.Fuzz(func(t *testing.T, input []byte) {
		var id UserID
		if err := id.UnmarshalText(input); err != nil {
			return
		}
		raw, err := id.MarshalText()
		if err != nil {
			t.Errorf("accepted value failed to marshal: %v", err)
		}
		var again UserID
		if err := again.UnmarshalText(raw); err != nil || again != id {
			t.Error("marshal/unmarshal round-trip changed value")
		}
	})
}
