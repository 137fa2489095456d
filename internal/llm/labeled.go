package llm

import "strings"

// ExtractLabeledLines parses a "Label: value" style LLM reply into a map
// keyed by lower-cased label. It tolerates markdown code fences, bold
// markers, bracketed values, leading chatter, and missing lines; labels
// that never appear are simply absent from the result. It never fails:
// a reply with no recognizable lines yields an empty map.
func ExtractLabeledLines(raw string, labels []string) map[string]string {
	wanted := make(map[string]bool, len(labels))
	for _, l := range labels {
		wanted[strings.ToLower(l)] = true
	}

	out := make(map[string]string)
	for _, line := range strings.Split(stripCodeFences(raw), "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "*_")

		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(strings.Trim(line[:idx], "*_ ")))
		if !wanted[label] {
			continue
		}

		value := strings.TrimSpace(line[idx+1:])
		value = strings.TrimSpace(strings.Trim(value, "*_"))
		value = strings.TrimSpace(strings.Trim(value, "[]"))

		// First occurrence wins; models occasionally repeat themselves.
		if _, seen := out[label]; !seen {
			out[label] = value
		}
	}
	return out
}

// stripCodeFences removes markdown code fences (```text ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}
