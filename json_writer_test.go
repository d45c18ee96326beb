package fintra

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriterOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", 1)
	w.Append("c", "three")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":2,"a":1,"c":"three"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriterOptional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("id", "x")
	w.Optional("description", "")
	w.Optional("note", "set")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"x","note":"set"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJsonObjectWriterEmbed(t *testing.T) {
	var w jsonObjectWriter
	w.Append("kind", "debt")
	w.EmbedFrom(struct {
		Person string `json:"person"`
	}{Person: "Ana"})
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"debt","person":"Ana"}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !json.Valid(got) {
		t.Errorf("invalid json: %s", got)
	}
}

func TestJsonObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}
