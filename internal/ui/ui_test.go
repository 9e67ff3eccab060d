package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDetails(t *testing.T) {
	d := Details{}.Add("Address", "San José").Add("Provider", "static")

	if len(d) != 2 || d[0].Key != "Address" || d[1].Key != "Provider" {
		t.Fatalf("Details should keep insertion order, got %+v", d)
	}
	if v, ok := d.Get("Provider"); !ok || v != "static" {
		t.Errorf("Get(Provider) = %q, %v", v, ok)
	}
	if _, ok := d.Get("Missing"); ok {
		t.Error("Get(Missing) should report false")
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Location found", Details{}.Add("Address", "San José, Costa Rica")),
			want:   []string{"SUCCESS", "Location found", "Address:", "San José, Costa Rica"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Lookup failed", errors.New("API key is missing."), []string{"Set OPENCAGE_API_KEY"}),
			want:   []string{"FAILED", "API key is missing.", "Troubleshooting:", "Set OPENCAGE_API_KEY"},
		},
		{
			name:   "warning",
			result: NewWarningResult("No address", nil),
			want:   []string{"WARNING", "No address"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestProgressUpdateStep(t *testing.T) {
	p := NewProgress("Reading position", "Reverse geocoding")

	p.UpdateStep(1, StepRunning, "")
	if p.Current != 1 {
		t.Errorf("Current = %d, want 1", p.Current)
	}

	p.UpdateStep(1, StepComplete, "static")
	if p.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", p.Percent)
	}

	// Out of range is ignored
	p.UpdateStep(5, StepComplete, "")
	if p.Percent != 0.5 {
		t.Errorf("Percent = %v after out-of-range update", p.Percent)
	}

	out := p.RenderBar()
	if !strings.Contains(out, "50%") || !strings.Contains(out, "[1/2]") {
		t.Errorf("RenderBar() should show the percentage and counter:\n%s", out)
	}
}

func TestRunner(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(RunnerConfig{
		Title:     "Location Lookup",
		Command:   "ecotrip locate",
		StepNames: []string{"Reading position"},
		Output:    &buf,
		Troubleshoot: func(error) []string {
			return []string{"try again"}
		},
	}).SetWidth(80)

	details, err := runner.Run(context.Background(), "Location found", func(ctx context.Context, onStep StepCallback) (Details, error) {
		onStep(1, StepRunning, "")
		onStep(1, StepComplete, "")
		return Details{}.Add("Address", "Reykjavík"), nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, ok := details.Get("Duration"); !ok {
		t.Error("Run() should add a Duration detail")
	}
	if out := buf.String(); !strings.Contains(out, "LOCATION LOOKUP") || !strings.Contains(out, "Reykjavík") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	wantErr := errors.New("boom")
	if _, err := runner.Run(context.Background(), "Location found", func(context.Context, StepCallback) (Details, error) {
		return nil, wantErr
	}); !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
	if out := buf.String(); !strings.Contains(out, "Location found failed") || !strings.Contains(out, "try again") {
		t.Errorf("failure output missing title or tips:\n%s", out)
	}
}

func TestRunnerWarningAndBar(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(RunnerConfig{
		Title:     "Location Lookup",
		Command:   "ecotrip locate",
		StepNames: []string{"Reading position", "Reverse geocoding"},
		Output:    &buf,
		ShowBar:   true,
		FailureTitle: func(err error) string {
			return "Lookup broke: " + err.Error()
		},
	}).SetWidth(80)

	details, err := runner.Run(context.Background(), "Location found", func(ctx context.Context, onStep StepCallback) (Details, error) {
		onStep(1, StepRunning, "")
		onStep(1, StepComplete, "static")
		onStep(2, StepRunning, "")
		onStep(2, StepComplete, "no address found")
		return nil, &Warning{Title: "No address found", Details: Details{}.Add("Latitude", "64.1")}
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want nil for a warning", err)
	}
	if lat, _ := details.Get("Latitude"); lat != "64.1" {
		t.Errorf("Latitude = %q", lat)
	}
	out := buf.String()
	for _, want := range []string{"WARNING", "No address found", "(static)", "100%", "[2/2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if _, err := runner.Run(context.Background(), "Location found", func(ctx context.Context, onStep StepCallback) (Details, error) {
		onStep(1, StepRunning, "")
		onStep(1, StepFailed, "")
		return nil, errors.New("no fix")
	}); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	out = buf.String()
	if !strings.Contains(out, "Lookup broke: no fix") || !strings.Contains(out, "0%") {
		t.Errorf("failure output missing custom title or bar:\n%s", out)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(&out, strings.NewReader(tt.input), "Overwrite", []string{"config exists"}, "Overwrite?")
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)
	p.PrintList(Details{}.Add("Iceland", "Northern lights").Add("Costa Rica", "Rainforest"))

	out := buf.String()
	if !strings.Contains(out, "Iceland") || !strings.Contains(out, "Rainforest") {
		t.Errorf("PrintList output:\n%s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("PrintList should print one line per row:\n%q", out)
	}
}
