package main

import (
	"testing"

	"github.com/iw2rmb/genkou/essay"
)

func TestLockReview(t *testing.T) {
	doc := essay.New()
	doc.Sections[0].Content = "本文"

	got, err := lockReview(doc)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if got.Settings.Editable || got.Settings.EditableStructure {
		t.Fatalf("settings not locked: %+v", got.Settings)
	}
	if got.Sections[0].Content != "本文" {
		t.Fatalf("content changed: %q", got.Sections[0].Content)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("GENKOU_TEST_ADDR", "")
	if got := getEnv("GENKOU_TEST_ADDR", ":9000"); got != ":9000" {
		t.Fatalf("default: got %q", got)
	}
	t.Setenv("GENKOU_TEST_ADDR", ":7000")
	if got := getEnv("GENKOU_TEST_ADDR", ":9000"); got != ":7000" {
		t.Fatalf("env: got %q", got)
	}
}
