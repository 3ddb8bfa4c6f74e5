package main

import (
	"bytes"
	"strings"
	"testing"
)

const snapshotJSON = `{
	"sex": "female",
	"patient": {"name": "Ana", "surname": "Novak", "age": "34"},
	"history": {
		"mainComplaint": {"asked": true, "normal": false, "detail": "Bolečina v žlički."},
		"allergies": {"asked": true, "normal": true}
	},
	"vitals": {"pulse": 72, "weight": 70, "height": 175, "bmi": 22.9}
}`

func TestRenderSnapshot(t *testing.T) {
	text, err := renderSnapshot(strings.NewReader(snapshotJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Osnovni podatki: Ana Novak, 34 let.",
		"Glavna težava / vodilni simptom: Bolečina v žlički.",
		"Alergije: Zanika alergije na zdravila, hrano ali druge znane alergene.",
		"Vitalne funkcije: pulz 72/min, teža 70 kg, višina 175 cm, ITM 22.9 kg/m².",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestRenderSnapshot_InvalidJSON(t *testing.T) {
	if _, err := renderSnapshot(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected error for malformed snapshot")
	}
}

func TestRenderSnapshot_DefaultsSex(t *testing.T) {
	// A snapshot without a sex must still render instead of failing.
	text, err := renderSnapshot(strings.NewReader(`{"history": {"socialHistory": {"asked": true, "normal": true}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Socialna anamneza:") {
		t.Errorf("expected social history block, got:\n%s", text)
	}
}

func TestRenderCommand_FromStdin(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render"})
	cmd.SetIn(strings.NewReader(snapshotJSON))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Glavna težava / vodilni simptom: Bolečina v žlički.") {
		t.Errorf("unexpected render output:\n%s", out.String())
	}
}
