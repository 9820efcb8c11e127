package stashmate

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("name", "Turtwig").
		Optional("category", "").
		Optional("condition", "NM").
		Append("qty", 2)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"name":"Turtwig","condition":"NM","qty":2}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", got)
	}
}
