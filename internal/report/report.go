// Package report renders the downloadable meeting summary document.
package report

import (
	"fmt"
	"strings"
	"time"
)

const banner = "============================================================" // 60 chars

// Report carries the pipeline outcomes to render.
type Report struct {
	Transcript     string
	TranslatedText string
	Summary        string
	SourceLang     string
	TargetLang     string
}

// Render produces the plain-text report with section banners. now stamps the
// "Generated on" line so callers (and tests) control the clock.
func Render(r Report, now time.Time) string {
	var b strings.Builder

	b.WriteString("AI Voice Lab - Meeting Summary Report\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("2006-01-02 15:04:05"))

	section(&b, fmt.Sprintf("ORIGINAL TRANSCRIPT (%s)", strings.ToUpper(r.SourceLang)), r.Transcript)
	section(&b, fmt.Sprintf("TRANSLATION (%s)", strings.ToUpper(r.TargetLang)), r.TranslatedText)
	section(&b, "AI SUMMARY", r.Summary)

	b.WriteString(banner + "\n")
	b.WriteString("Report generated by AI Voice Lab\n")
	b.WriteString("Post-processing: Applied common error corrections\n")
	b.WriteString(banner + "\n")

	return b.String()
}

// Filename returns the timestamped attachment name.
func Filename(now time.Time) string {
	return fmt.Sprintf("meeting_summary_%s.txt", now.Format("20060102_150405"))
}

func section(b *strings.Builder, title, body string) {
	b.WriteString(banner + "\n")
	b.WriteString(title + "\n")
	b.WriteString(banner + "\n")
	b.WriteString(body + "\n\n")
}
