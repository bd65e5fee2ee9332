package secureparams

import (
	"strings"
	"testing"
)

func TestEncodeValues(t *testing.T) {
	got := EncodeValues(map[string]string{"a": "1", "b": "2 3"})

	want := "a=1&b=2+3"
	if got != want {
		t.Errorf("EncodeValues() = %q, want %q", got, want)
	}
}

func TestEncodeValues_RoundTrip(t *testing.T) {
	values := map[string]string{
		"a": "1",
		"b": "2 3",
		"c": "sp&cial=chars?",
	}

	encoded := EncodeValues(values)
	if strings.Contains(encoded, "2 3") {
		t.Error("space should be percent-encoded")
	}

	decoded, err := DecodeValues(encoded)
	if err != nil {
		t.Fatalf("DecodeValues() error: %v", err)
	}

	if len(decoded) != len(values) {
		t.Fatalf("DecodeValues() produced %d entries, want %d", len(decoded), len(values))
	}
	for k, v := range values {
		if decoded[k] != v {
			t.Errorf("decoded[%q] = %q, want %q", k, decoded[k], v)
		}
	}
}

func TestEncodeValues_Empty(t *testing.T) {
	if got := EncodeValues(map[string]string{}); got != "" {
		t.Errorf("EncodeValues(empty) = %q, want empty string", got)
	}
	if got := EncodeValues(nil); got != "" {
		t.Errorf("EncodeValues(nil) = %q, want empty string", got)
	}
}

func TestEncodeValues_SkipsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{
			name:   "invalid value skipped",
			values: map[string]string{"a": "1", "b": "\xff\xfe"},
			want:   "a=1",
		},
		{
			name:   "invalid key skipped",
			values: map[string]string{"\xff": "1", "b": "2"},
			want:   "b=2",
		},
		{
			name:   "all entries invalid",
			values: map[string]string{"\xff": "\xfe"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeValues(tt.values); got != tt.want {
				t.Errorf("EncodeValues() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeValues_NoSeparatorEdges(t *testing.T) {
	got := EncodeValues(map[string]string{"a": "1", "b": "2"})

	if strings.HasPrefix(got, "&") || strings.HasSuffix(got, "&") {
		t.Errorf("EncodeValues() = %q, should have no leading or trailing separator", got)
	}
	if strings.HasPrefix(got, "?") {
		t.Errorf("EncodeValues() = %q, should have no '?' prefix", got)
	}
	if strings.Count(got, "&") != 1 {
		t.Errorf("EncodeValues() = %q, want exactly one separator", got)
	}
}

func TestDecodeValues_LastKeyWins(t *testing.T) {
	decoded, err := DecodeValues("a=1&a=2")
	if err != nil {
		t.Fatalf("DecodeValues() error: %v", err)
	}
	if decoded["a"] != "2" {
		t.Errorf("decoded[a] = %q, want %q", decoded["a"], "2")
	}
}

func TestDecodeValues_Malformed(t *testing.T) {
	if _, err := DecodeValues("a=%zz"); err == nil {
		t.Error("DecodeValues() should fail on malformed percent-encoding")
	}
}
