package yaml

import "testing"

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", got, "application/yaml")
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	values := map[string]string{"username": "Alice", "password": "ENC(Hello, Bob!)"}

	data, err := c.Marshal(values)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]string
	if err := c.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if len(decoded) != len(values) {
		t.Fatalf("round-trip produced %d entries, want %d", len(decoded), len(values))
	}
	for k, v := range values {
		if decoded[k] != v {
			t.Errorf("decoded[%q] = %q, want %q", k, decoded[k], v)
		}
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	var decoded map[string]string
	if err := New().Unmarshal([]byte("{invalid: [yaml"), &decoded); err == nil {
		t.Error("Unmarshal() should fail on invalid YAML")
	}
}
