// README: UI action item model and sheet row normalization.
package uiconfig

import (
	"strconv"
	"strings"
)

// ActionItem is one button/action the chat UI renders.
type ActionItem struct {
	Label     string `json:"label"`
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	Payload   string `json:"payload"`
	Groups    string `json:"groups"`
	Priority  int    `json:"priority"`
	Available bool   `json:"available"`
}

// normalizeRow coerces one raw sheet row (header name to cell text) into an
// ActionItem. Header names are matched case-insensitively and legacy aliases
// (name for label, action for payload) are honored.
func normalizeRow(row map[string]string) ActionItem {
	get := func(keys ...string) string {
		for _, k := range keys {
			for rk, v := range row {
				if strings.EqualFold(strings.TrimSpace(rk), k) && v != "" {
					return v
				}
			}
		}
		return ""
	}

	item := ActionItem{
		Label:  get("label", "name"),
		Icon:   get("icon"),
		Groups: get("groups"),
	}

	item.Type = strings.ToLower(get("type"))
	if item.Type == "" {
		item.Type = "action"
	}

	item.Payload = get("payload", "action")
	if item.Payload == "" {
		item.Payload = item.Label
	}

	if n, err := strconv.Atoi(strings.TrimSpace(get("priority"))); err == nil {
		item.Priority = n
	}

	switch strings.ToLower(strings.TrimSpace(get("available"))) {
	case "true", "yes", "1", "y":
		item.Available = true
	}

	return item
}

// prepare filters to available, labeled items and sorts by priority
// descending.
func prepare(items []ActionItem) []ActionItem {
	out := make([]ActionItem, 0, len(items))
	for _, it := range items {
		if it.Available && it.Label != "" {
			out = append(out, it)
		}
	}
	// Insertion sort, small N and stable for equal priorities.
	for i := 1; i < len(out); i++ {
		key := out[i]
		j := i - 1
		for j >= 0 && out[j].Priority < key.Priority {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = key
	}
	return out
}
