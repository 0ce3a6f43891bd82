package main

import (
	"strings"
	"testing"
)

func TestParseArgs_NoArgs(t *testing.T) {
	res, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ShowHelp || res.ShowVersion {
		t.Fatalf("expected plain launch, got %+v", res)
	}
	if res.ConfigPath != "fixlab.yaml" {
		t.Fatalf("expected default config path, got %q", res.ConfigPath)
	}
}

func TestParseArgs_ConfigFlag(t *testing.T) {
	res, err := parseArgs([]string{"--config", "lab.yaml"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.ConfigPath != "lab.yaml" {
		t.Fatalf("expected lab.yaml, got %q", res.ConfigPath)
	}
}

func TestParseArgs_Version(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"-v"}} {
		res, err := parseArgs(args)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !res.ShowVersion {
			t.Fatalf("expected ShowVersion for %v", args)
		}
	}
}

func TestParseArgs_Help(t *testing.T) {
	res, err := parseArgs([]string{"--help"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.ShowHelp {
		t.Fatal("expected ShowHelp")
	}
	if !strings.Contains(res.HelpText, "Usage: fixlab") {
		t.Fatalf("expected usage text, got %q", res.HelpText)
	}
}

func TestParseArgs_PositionalRejected(t *testing.T) {
	if _, err := parseArgs([]string{"extra"}); err == nil {
		t.Fatal("expected error for positional args")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := parseArgs([]string{"--bogus"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "Usage: fixlab") {
		t.Fatalf("expected usage in error, got %v", err)
	}
}
