// Package extract recovers a JSON payload from free-form model output.
// Model completions routinely wrap the payload in markdown fences or surround
// it with commentary; extraction is a best-effort string transform that never
// fails, so a bad candidate surfaces as a decode error with full context
// instead of silently producing empty output.
package extract

import (
	"regexp"
	"strings"
)

// fencePattern matches the first triple-backtick block, optionally tagged
// with a language (```json ... ```). Only the first block is used.
var fencePattern = regexp.MustCompile("(?s)```[a-zA-Z0-9]*[ \t]*\r?\n?(.*?)```")

// Candidate isolates the most likely JSON substring from a text blob.
//
// Strategy, in priority order:
//  1. the inner content of the first fenced code block, trimmed
//  2. the inclusive substring from the first '{' to the last '}'
//  3. the trimmed input unchanged
func Candidate(text string) string {
	trimmed := strings.TrimSpace(text)

	if m := fencePattern.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexByte(trimmed, '{')
	end := strings.LastIndexByte(trimmed, '}')
	if start >= 0 && end > start {
		return trimmed[start : end+1]
	}

	return trimmed
}
