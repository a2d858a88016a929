// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package theorem

import (
	"regexp"
	"strings"
)

const (
	// inputCap bounds how much extracted text is searched at all.
	inputCap = 20000
	// windowCap bounds the text taken from the match start.
	windowCap = 2000
	// maxSentences is how many sentences of the window are kept.
	maxSentences = 3
	// excerptCap is the final length limit before the ellipsis.
	excerptCap = 700
)

// Theorem statement patterns, tried in priority order. The first one
// that matches wins and later patterns are never consulted.
var theoremPatterns = []*regexp.Regexp{
	// An explicit "Main Theorem" heading.
	regexp.MustCompile(`(?im)main\s+theorem`),
	// A numbered statement such as "Theorem 2:" or "Theorem 1.3:".
	regexp.MustCompile(`(?im)theorem\s+\d+(\.\d+)*\s*:`),
	// A bare "Theorem:" heading.
	regexp.MustCompile(`(?im)theorem\s*:`),
	// "main result" in running prose.
	regexp.MustCompile(`(?im)main\s+result`),
	// Declarative statement openings.
	regexp.MustCompile(`(?im)we\s+(prove|show|establish)\s+that`),
	// Japanese main theorem or result, up to the sentence terminator.
	regexp.MustCompile(`(?im)(主定理|主結果)[^。！？.!?]*[。！？.!?]`),
	// Japanese numbered theorem heading, half- or full-width colon.
	regexp.MustCompile(`(?im)定理\s*\d+\s*[:：]`),
}

// sentenceEndRe splits on a sentence terminator in either script, or a
// line break, followed by whitespace.
var sentenceEndRe = regexp.MustCompile(`[.!?。！？\n]\s+`)

// Excerpt searches text for a theorem statement and returns up to
// three sentences of it, whitespace-collapsed and capped at 700
// characters. An empty string means no pattern matched.
func Excerpt(text string) string {
	if runes := []rune(text); len(runes) > inputCap {
		text = string(runes[:inputCap])
	}
	for _, re := range theoremPatterns {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		return shape(text[loc[0]:])
	}
	return ""
}

// shape trims the matched window down to the final excerpt.
func shape(window string) string {
	if runes := []rune(window); len(runes) > windowCap {
		window = string(runes[:windowCap])
	}
	sentences := sentenceEndRe.Split(window, -1)
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}
	joined := strings.Join(strings.Fields(strings.Join(sentences, " ")), " ")
	if runes := []rune(joined); len(runes) > excerptCap {
		return string(runes[:excerptCap]) + "…"
	}
	return joined
}
