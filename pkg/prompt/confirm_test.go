package prompt

import "testing"

func TestParseBool(t *testing.T) {
	for _, in := range []string{"y", "Yes", "true", "1"} {
		if v, err := ParseBool(in); err != nil || !v {
			t.Fatalf("%q: expected true, got %v %v", in, v, err)
		}
	}
	for _, in := range []string{"n", "No", "false", "0"} {
		if v, err := ParseBool(in); err != nil || v {
			t.Fatalf("%q: expected false, got %v %v", in, v, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatalf("expected error for maybe")
	}
}
