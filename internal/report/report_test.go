package report

import (
	"strings"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	out := Render(Report{
		Transcript:     "hello world",
		TranslatedText: "bonjour le monde",
		Summary:        "Text summary: hello world",
		SourceLang:     "en",
		TargetLang:     "fr",
	}, now)

	// All three payloads appear verbatim.
	for _, verbatim := range []string{
		"hello world",
		"bonjour le monde",
		"Text summary: hello world",
	} {
		if !strings.Contains(out, verbatim) {
			t.Errorf("report missing %q", verbatim)
		}
	}

	// Section headers with language codes uppercased.
	for _, header := range []string{
		"ORIGINAL TRANSCRIPT (EN)",
		"TRANSLATION (FR)",
		"AI SUMMARY",
		"Generated on: 2026-03-14 09:26:53",
	} {
		if !strings.Contains(out, header) {
			t.Errorf("report missing header %q", header)
		}
	}

	// Sections are delimited by 60-char banners.
	if got := strings.Count(out, banner); got < 6 {
		t.Errorf("report has %d banners, want at least 6", got)
	}
	if len(banner) != 60 {
		t.Errorf("banner length = %d, want 60", len(banner))
	}
}

func TestRenderSectionOrder(t *testing.T) {
	out := Render(Report{
		Transcript:     "T",
		TranslatedText: "X",
		Summary:        "S",
		SourceLang:     "en",
		TargetLang:     "de",
	}, time.Now())

	ti := strings.Index(out, "ORIGINAL TRANSCRIPT")
	xi := strings.Index(out, "TRANSLATION")
	si := strings.Index(out, "AI SUMMARY")
	if !(ti < xi && xi < si) {
		t.Errorf("sections out of order: transcript=%d translation=%d summary=%d", ti, xi, si)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := Filename(now); got != "meeting_summary_20260314_092653.txt" {
		t.Errorf("Filename = %q", got)
	}
}
