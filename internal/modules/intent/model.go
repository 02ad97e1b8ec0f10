// README: Intent record model and the closed dataset query taxonomy.
package intent

import "encoding/json"

// Top-level intents. Classification never yields anything outside this set.
const (
	PropertyQuery = "property_query"
	DatasetQuery  = "dataset_query"
	Greeting      = "greeting"
	Other         = "other"
)

// Dataset query types the classifier is allowed to emit. The list is closed:
// a value outside it is normalized away, never passed downstream.
const (
	OwnerWithMostProperties      = "owner_with_most_properties"
	CountPropertiesByOwner       = "count_properties_by_owner"
	ListPropertiesByOwner        = "list_properties_by_owner"
	PropertiesWithPool           = "properties_with_pool"
	PropertiesWithoutCameras     = "properties_without_cameras"
	HighestRatedProperty         = "highest_rated_property"
	LowestRatedProperty          = "lowest_rated_property"
	PropertiesAbovePrice         = "properties_above_price"
	PropertiesByBeds             = "properties_by_beds"
	PropertiesByMaxGuests        = "properties_by_max_guests"
	PropertiesWithWifiSpeedAbove = "properties_with_wifi_speed_above"
	PropertiesByStyle            = "properties_by_style"
	PropertiesByType             = "properties_by_type"
	ListAllAreas                 = "list_all_areas"
	PropertiesInArea             = "properties_in_area"
	PropertiesNearEachOther      = "properties_near_each_other"
)

var datasetIntentTypes = map[string]struct{}{
	OwnerWithMostProperties:      {},
	CountPropertiesByOwner:       {},
	ListPropertiesByOwner:        {},
	PropertiesWithPool:           {},
	PropertiesWithoutCameras:     {},
	HighestRatedProperty:         {},
	LowestRatedProperty:          {},
	PropertiesAbovePrice:         {},
	PropertiesByBeds:             {},
	PropertiesByMaxGuests:        {},
	PropertiesWithWifiSpeedAbove: {},
	PropertiesByStyle:            {},
	PropertiesByType:             {},
	ListAllAreas:                 {},
	PropertiesInArea:             {},
	PropertiesNearEachOther:      {},
}

// ValidDatasetIntentType reports whether v is a member of the closed taxonomy.
func ValidDatasetIntentType(v string) bool {
	_, ok := datasetIntentTypes[v]
	return ok
}

// Record is the structured intent threaded through the whole pipeline.
// Nullable fields are pointers so absence survives JSON round trips.
// The record is built once per message and only mutated by Enrich.
type Record struct {
	Intent            string  `json:"intent"`
	PropertyName      *string `json:"propertyName"`
	InformationToFind *string `json:"informationToFind"`
	DatasetIntentType *string `json:"datasetIntentType"`
	DatasetOwnerName  *string `json:"datasetOwnerName"`
	DatasetValue      *string `json:"datasetValue"`
	InputMessage      string  `json:"inputMessage"`

	// Filled by the field resolver after extraction.
	FieldType   string `json:"fieldType,omitempty"`
	DatasetHint string `json:"datasetHint,omitempty"`
}

// Default returns the record used whenever extraction is inconclusive:
// intent "other" with every extracted field null.
func Default(message string) *Record {
	return &Record{Intent: Other, InputMessage: message}
}

// Enrich attaches the field-resolution hints. This is the single permitted
// mutation after construction.
func (r *Record) Enrich(fieldType, datasetHint string) {
	r.FieldType = fieldType
	r.DatasetHint = datasetHint
}

// Decode parses raw model output into a Record and sanitizes it. It never
// fails: unparseable JSON yields the "other" default for message.
func Decode(raw []byte, message string) *Record {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Default(message)
	}
	sanitize(&rec, message)
	return &rec
}

// sanitize enforces the record invariants on untrusted extraction output:
// the intent must be one of the four known values and datasetIntentType must
// belong to the closed taxonomy. Violations degrade to "other" rather than
// propagating an invented value downstream.
func sanitize(rec *Record, message string) {
	switch rec.Intent {
	case PropertyQuery, DatasetQuery, Greeting, Other:
	default:
		rec.Intent = Other
	}
	if rec.DatasetIntentType != nil && !ValidDatasetIntentType(*rec.DatasetIntentType) {
		rec.DatasetIntentType = nil
		rec.Intent = Other
	}
	if rec.InputMessage == "" {
		rec.InputMessage = message
	}
}

func strptr(s string) *string { return &s }
