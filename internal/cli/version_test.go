package cli

import (
	"strings"
	"testing"
)

func TestVersionFlag(t *testing.T) {
	output, err := executeRoot(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	want := "npmcheck " + version + " (" + commit + ")\n"
	if output != want {
		t.Errorf("--version output = %q, want %q", output, want)
	}
}

func TestVersionFlag_SkipsNameCheck(t *testing.T) {
	f := &fakeNPM{}
	server := newFakeNPM(t, f)

	output, err := executeRoot(t, "react", "--version", "--registry", server.URL)
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.HasPrefix(output, "npmcheck ") {
		t.Errorf("expected version line, got %q", output)
	}
	if got := f.seen(); len(got) != 0 {
		t.Errorf("expected no registry requests, got %v", got)
	}
}

func TestVersionVariables(t *testing.T) {
	if version == "" {
		t.Error("version variable should not be empty")
	}
	if commit == "" {
		t.Error("commit variable should not be empty")
	}
}
