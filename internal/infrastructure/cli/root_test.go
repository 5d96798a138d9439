package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/estalabs/sentinel/internal/application"
	"github.com/estalabs/sentinel/pkg/domain/ai"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) ID() string { return "stub" }
func (s *stubProvider) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ai.GenerateResponse{Text: s.text, Model: "stub", Done: true}, nil
}

func runWith(t *testing.T, p ai.Provider, args []string) string {
	t.Helper()
	prev := service
	service = application.NewSentinelService(p)
	t.Cleanup(func() { service = prev })

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	return buf.String()
}

func TestRunQuery_PrintsBannerAndResponse(t *testing.T) {
	out := runWith(t, &stubProvider{text: "Accrual 1:30 from July 1"}, []string{"Upcoming", "ESTA", "changes", "2026?"})

	lines := strings.Split(out, "\n")
	if lines[0] != "ESTA Sentinel - Querying: Upcoming ESTA changes 2026?" {
		t.Errorf("unexpected banner: %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", 50) {
		t.Errorf("unexpected separator: %q", lines[1])
	}
	if lines[2] != "Accrual 1:30 from July 1" {
		t.Errorf("unexpected response line: %q", lines[2])
	}
}

func TestRunQuery_NoArgsUsesDefaultPrompt(t *testing.T) {
	out := runWith(t, &stubProvider{text: "ok"}, []string{})

	if !strings.Contains(out, "ESTA Sentinel - Querying: Upcoming ESTA changes 2026?") {
		t.Errorf("expected default prompt in banner, got %q", out)
	}
}

func TestRunQuery_EmptyResponsePrintedVerbatim(t *testing.T) {
	out := runWith(t, &stubProvider{text: ""}, []string{"q"})

	// An empty generation is success: a blank line, no guidance block.
	if strings.Contains(out, "No response received") {
		t.Errorf("empty response must not trigger guidance: %q", out)
	}
	lines := strings.Split(out, "\n")
	if lines[2] != "" {
		t.Errorf("expected blank response line, got %q", lines[2])
	}
}

func TestRunQuery_APIErrorDiagnosticAndGuidance(t *testing.T) {
	err := &ai.APIError{StatusCode: 404, Message: "model 'esta-sentinel' not found"}
	out := runWith(t, &stubProvider{err: err}, []string{"q"})

	if n := strings.Count(out, "Ollama API error:"); n != 1 {
		t.Errorf("expected exactly one API diagnostic line, got %d in %q", n, out)
	}
	if strings.Contains(out, "Error querying Sentinel:") {
		t.Errorf("API failure must not use the generic wording: %q", out)
	}
	if !strings.Contains(out, "model 'esta-sentinel' not found") {
		t.Errorf("diagnostic must name the error: %q", out)
	}
	if !strings.Contains(out, "No response received. Ensure Ollama is running.") ||
		!strings.Contains(out, "Start with: ollama serve") ||
		!strings.Contains(out, "Create model: ollama create esta-sentinel -f Modelfile") {
		t.Errorf("expected full guidance block, got %q", out)
	}
}

func TestRunQuery_GenericErrorDiagnostic(t *testing.T) {
	out := runWith(t, &stubProvider{err: errors.New("connection refused")}, []string{"q"})

	if n := strings.Count(out, "Error querying Sentinel:"); n != 1 {
		t.Errorf("expected exactly one generic diagnostic line, got %d in %q", n, out)
	}
	if strings.Contains(out, "Ollama API error:") {
		t.Errorf("generic failure must not use the API wording: %q", out)
	}
	if !strings.Contains(out, "No response received. Ensure Ollama is running.") {
		t.Errorf("expected guidance block, got %q", out)
	}
}

func TestRunQuery_DashArgumentsFlowIntoPrompt(t *testing.T) {
	out := runWith(t, &stubProvider{text: "ok"}, []string{"--esta", "changes"})

	if !strings.Contains(out, "ESTA Sentinel - Querying: --esta changes") {
		t.Errorf("expected dash arguments in the prompt, got %q", out)
	}
}
