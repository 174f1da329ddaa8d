package config

import "testing"

func TestLoadAppliesOutputDefault(t *testing.T) {
	cfg, err := Load(Config{Input: "main.argon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "out.txt" {
		t.Fatalf("Output = %q, want default %q", cfg.Output, "out.txt")
	}
}

func TestLoadRejectsMissingInput(t *testing.T) {
	if _, err := Load(Config{}); err == nil {
		t.Fatal("expected a validation error for an empty Input")
	}
}

func TestLoadPreservesExplicitOutput(t *testing.T) {
	cfg, err := Load(Config{Input: "main.argon", Output: "build/prog.cpp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "build/prog.cpp" {
		t.Fatalf("Output = %q, want %q", cfg.Output, "build/prog.cpp")
	}
}
