package main

import (
	"strings"
	"testing"
)

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Verdict", statusOK, "98.50% accuracy", false)
	if !strings.Contains(line, "Verdict:") {
		t.Fatalf("label missing: %q", line)
	}
	if !strings.Contains(line, "[OK] 98.50% accuracy") {
		t.Fatalf("status text missing: %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("unexpected color codes without colorize: %q", line)
	}
}

func TestRenderStatusLineColorized(t *testing.T) {
	line := renderStatusLine("Verdict", statusError, "failed", true)
	if !strings.HasPrefix(line, ansiRed) || !strings.HasSuffix(line, ansiReset) {
		t.Fatalf("expected red wrapping: %q", line)
	}
}

func TestAccuracyKind(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     statusKind
	}{
		{100, statusOK},
		{90, statusOK},
		{89.99, statusWarn},
		{75, statusWarn},
		{74.99, statusError},
		{0, statusError},
	}
	for _, tc := range cases {
		if got := accuracyKind(tc.accuracy); got != tc.want {
			t.Errorf("accuracyKind(%v) = %v, want %v", tc.accuracy, got, tc.want)
		}
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader("Ranking", false)
	if len(lines) != 2 {
		t.Fatalf("expected header and rule, got %v", lines)
	}
	if lines[0] != "== Ranking ==" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines[1]) != len(lines[0]) {
		t.Fatalf("rule length mismatch: %q vs %q", lines[1], lines[0])
	}
}
