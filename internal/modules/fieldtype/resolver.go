// README: Field-type resolver; maps the extracted question to a canonical property field tag.
package fieldtype

import "strings"

// Canonical field tags the property handler understands.
const (
	FieldWifi    = "wifi"
	FieldCheckIn = "check_in"
	FieldParking = "parking"
	FieldPrice   = "price"
	FieldRating  = "rating"
	FieldBeds    = "beds"
	FieldGuests  = "max_guests"
	FieldPool    = "pool"
	FieldCameras = "cameras"
	FieldArea    = "area"
	FieldOwner   = "owner"
	FieldGeneral = "general"
)

// fieldKeywords is scanned in order; the first tag with a matching keyword
// wins, so more specific tags sit before broader ones.
var fieldKeywords = []struct {
	tag   string
	words []string
}{
	{FieldWifi, []string{"wifi", "wi-fi", "internet", "password"}},
	{FieldCheckIn, []string{"check-in", "check in", "checkin", "arrival"}},
	{FieldParking, []string{"parking", "park", "garage"}},
	{FieldPrice, []string{"price", "rate", "cost", "night", "$"}},
	{FieldRating, []string{"rating", "rated", "review", "stars"}},
	{FieldBeds, []string{"bed", "bedroom"}},
	{FieldGuests, []string{"guest", "sleep", "people", "occupancy"}},
	{FieldPool, []string{"pool", "hot tub", "jacuzzi"}},
	{FieldCameras, []string{"camera", "surveillance"}},
	{FieldArea, []string{"area", "located", "location", "where", "city"}},
	{FieldOwner, []string{"owner", "owned", "owns"}},
}

// Resolve maps the extracted "informationToFind" phrase plus the raw message
// to a canonical field tag and a dataset-query hint. It is a pure function:
// both inputs may be nil/empty and the result is a deterministic best-effort
// tag. The extracted phrase is the stronger signal, so it is scanned alone
// before the full message gets a turn.
func Resolve(informationToFind *string, inputMessage string) (fieldType, datasetHint string) {
	if informationToFind != nil {
		if tag, ok := matchTag(strings.ToLower(*informationToFind)); ok {
			return tag, hintFor(tag)
		}
	}
	if tag, ok := matchTag(strings.ToLower(inputMessage)); ok {
		return tag, hintFor(tag)
	}
	return FieldGeneral, ""
}

func matchTag(text string) (string, bool) {
	for _, entry := range fieldKeywords {
		for _, word := range entry.words {
			if strings.Contains(text, word) {
				return entry.tag, true
			}
		}
	}
	return "", false
}

// hintFor suggests the dataset column family a field tag aggregates over.
func hintFor(tag string) string {
	switch tag {
	case FieldWifi:
		return "wifi_speed"
	case FieldPrice:
		return "price_per_night"
	case FieldRating:
		return "rating"
	case FieldBeds:
		return "beds"
	case FieldGuests:
		return "max_guests"
	case FieldPool:
		return "amenities"
	case FieldCameras:
		return "amenities"
	case FieldArea:
		return "area"
	case FieldOwner:
		return "owner"
	default:
		return ""
	}
}
