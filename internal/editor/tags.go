package editor

import "strings"

// TagTriggerKey commits the tag input to the tag list.
const TagTriggerKey = "enter"

// TagKeyIntent maps a key pressed inside the tag input to its intent. Only the
// trigger key with non-empty input produces one.
func TagKeyIntent(key, input string) (Action, bool) {
	if key != TagTriggerKey || strings.TrimSpace(input) == "" {
		return nil, false
	}
	return AddTag{}, true
}

// Suggest returns up to limit known tags starting with prefix that are not
// already on the list.
func Suggest(known []string, prefix string, current []string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || limit <= 0 {
		return nil
	}
	taken := make(map[string]struct{}, len(current))
	for _, t := range current {
		taken[t] = struct{}{}
	}
	var out []string
	for _, t := range known {
		if _, ok := taken[t]; ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(t), prefix) {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
