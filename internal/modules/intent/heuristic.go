// README: Deterministic fallback classifier used when no extractor is configured.
package intent

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

var (
	unitPattern  = regexp.MustCompile(`(?:unit\s*#?\s*|#)(\d+)`)
	pricePattern = regexp.MustCompile(`\$(\d+)`)
	greetPattern = regexp.MustCompile(`\b(hi|hello|hey)\b`)
	poolPattern  = regexp.MustCompile(`\b(pool|hot tub)\b`)
)

// rule pairs a match predicate with a record constructor. Rules are evaluated
// in slice order and the first match wins, which makes the tie-break order an
// explicit data structure instead of buried control flow.
type rule struct {
	name  string
	match func(text string) bool
	build func(message, text string) *Record
}

var heuristicRules = []rule{
	{
		name:  "pool",
		match: func(text string) bool { return poolPattern.MatchString(text) },
		build: func(message, _ string) *Record {
			return &Record{
				Intent:            DatasetQuery,
				InformationToFind: strptr("properties with pool"),
				DatasetIntentType: strptr(PropertiesWithPool),
				InputMessage:      message,
			}
		},
	},
	{
		name:  "wifi",
		match: func(text string) bool { return containsAny(text, "wifi", "wi-fi", "internet") },
		build: func(message, text string) *Record {
			if m := unitPattern.FindStringSubmatch(text); m != nil {
				return &Record{
					Intent:            PropertyQuery,
					PropertyName:      strptr("Unit " + m[1]),
					InformationToFind: strptr("wifi"),
					InputMessage:      message,
				}
			}
			return &Record{
				Intent:            DatasetQuery,
				InformationToFind: strptr("wifi"),
				DatasetIntentType: strptr(PropertiesWithWifiSpeedAbove),
				InputMessage:      message,
			}
		},
	},
	{
		name:  "greeting",
		match: func(text string) bool { return greetPattern.MatchString(text) },
		build: func(message, _ string) *Record {
			return &Record{Intent: Greeting, InputMessage: message}
		},
	},
	{
		name:  "price",
		match: func(text string) bool { return pricePattern.MatchString(text) },
		build: func(message, text string) *Record {
			amount := pricePattern.FindStringSubmatch(text)[1]
			return &Record{
				Intent:            DatasetQuery,
				InformationToFind: strptr(fmt.Sprintf("properties above $%s", amount)),
				DatasetIntentType: strptr(PropertiesAbovePrice),
				DatasetValue:      strptr(amount),
				InputMessage:      message,
			}
		},
	},
}

// classifyHeuristic runs the ordered rule table over the lower-cased message.
// It never panics out to the caller; any internal failure degrades to the
// "other" default so the pipeline always gets a usable record.
func classifyHeuristic(message string) (rec *Record) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("intent: heuristic classifier recovered: %v", r)
			rec = Default(message)
		}
	}()

	text := strings.ToLower(message)
	for _, rl := range heuristicRules {
		if rl.match(text) {
			return rl.build(message, text)
		}
	}
	return Default(message)
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
