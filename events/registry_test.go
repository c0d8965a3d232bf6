package events

import "testing"

func TestTypeName_RoundTrip(t *testing.T) {
	for _, et := range AllTypes() {
		name := TypeName(et)
		got, ok := ParseType(name)
		if !ok || got != et {
			t.Errorf("ParseType(%q) = %v, %v; expected %v", name, got, ok, et)
		}
	}
}

func TestParseType_CaseInsensitive(t *testing.T) {
	got, ok := ParseType("  ValueChanged ")
	if !ok || got != EventValueChanged {
		t.Errorf("Expected EventValueChanged, got %v (%v)", got, ok)
	}
	if _, ok := ParseType("touchUpInside"); ok {
		t.Error("Expected unknown name to fail")
	}
}

func TestTypeName_Unknown(t *testing.T) {
	if got := TypeName(EventType(42)); got != "EventType(42)" {
		t.Errorf("Unexpected name %q", got)
	}
	if EventValueChanged.String() != "valueChanged" {
		t.Errorf("Unexpected String() %q", EventValueChanged.String())
	}
}
