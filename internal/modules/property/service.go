// README: Property and dataset query handlers over the portfolio store.
package property

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dreamstate/internal/modules/chat"
	"dreamstate/internal/modules/fieldtype"
	"dreamstate/internal/modules/intent"
)

const (
	// nearbyThresholdKm bounds the "near each other" pairing.
	nearbyThresholdKm = 10.0
	// areaRadiusKm bounds the geocoded area fallback.
	areaRadiusKm = 25.0
)

// Geocoder resolves an area name to coordinates. Optional; when absent, area
// queries rely on the literal area column alone.
type Geocoder interface {
	GeocodeArea(ctx context.Context, area string) (lat, lng float64, err error)
}

// Service answers property and dataset queries.
type Service struct {
	store    *Store
	geocoder Geocoder
}

// NewService creates the handler service. geocoder may be nil.
func NewService(store *Store, geocoder Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

// HandlePropertyQuery answers a question about one named property using the
// field tag resolved during enrichment.
func (s *Service) HandlePropertyQuery(ctx context.Context, rec *intent.Record) (chat.Result, error) {
	if rec.PropertyName == nil || strings.TrimSpace(*rec.PropertyName) == "" {
		return chat.Plain("Which property do you mean? Please include the unit number or name."), nil
	}

	prop, err := s.store.GetByName(ctx, strings.TrimSpace(*rec.PropertyName))
	if errors.Is(err, ErrNotFound) {
		return chat.Plain(fmt.Sprintf("I couldn't find a property called %q.", *rec.PropertyName)), nil
	}
	if err != nil {
		return chat.Result{}, err
	}

	return chat.StructuredResult(&chat.Structured{
		Type:    "property_result",
		Message: answerFieldQuestion(prop, rec.FieldType),
		Data:    map[string]any{"property": prop},
	}), nil
}

// HandleDatasetQuery dispatches on the validated dataset intent type. An
// absent type means classification could not pin the question down, so the
// reply asks for a rephrase instead of guessing a query.
func (s *Service) HandleDatasetQuery(ctx context.Context, rec *intent.Record) (chat.Result, error) {
	if rec.DatasetIntentType == nil {
		return chat.Plain("I couldn't tell exactly which properties you're asking about. Could you rephrase?"), nil
	}

	switch *rec.DatasetIntentType {
	case intent.OwnerWithMostProperties:
		oc, err := s.store.OwnerWithMostProperties(ctx)
		if errors.Is(err, ErrNotFound) {
			return chat.Plain("There are no properties in the portfolio yet."), nil
		}
		if err != nil {
			return chat.Result{}, err
		}
		return structured(fmt.Sprintf("%s owns the most properties (%d).", oc.Owner, oc.Count),
			map[string]any{"owner": oc}), nil

	case intent.CountPropertiesByOwner:
		owner := stringValue(rec.DatasetOwnerName)
		if owner == "" {
			return chat.Plain("Whose properties should I count? Please mention the owner's name."), nil
		}
		n, err := s.store.CountByOwner(ctx, owner)
		if err != nil {
			return chat.Result{}, err
		}
		return structured(fmt.Sprintf("%s owns %d propert%s.", owner, n, plural(n, "y", "ies")),
			map[string]any{"owner": owner, "count": n}), nil

	case intent.ListPropertiesByOwner:
		owner := stringValue(rec.DatasetOwnerName)
		if owner == "" {
			return chat.Plain("Whose properties should I list? Please mention the owner's name."), nil
		}
		props, err := s.store.ListByOwner(ctx, owner)
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("%s owns", owner), "no properties"), nil

	case intent.PropertiesWithPool:
		props, err := s.store.WithPool(ctx)
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, "With a pool or hot tub:", "none of our properties has a pool or hot tub"), nil

	case intent.PropertiesWithoutCameras:
		props, err := s.store.WithoutCameras(ctx)
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, "Camera-free properties:", "every property has cameras"), nil

	case intent.HighestRatedProperty:
		return s.ratedResult(ctx, true)

	case intent.LowestRatedProperty:
		return s.ratedResult(ctx, false)

	case intent.PropertiesAbovePrice:
		min, ok := numericValue(rec.DatasetValue)
		if !ok {
			return chat.Plain("Above which nightly price? For example: properties above $150."), nil
		}
		props, err := s.store.AbovePrice(ctx, min)
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("Above $%.0f per night:", min),
			fmt.Sprintf("no properties are priced above $%.0f per night", min)), nil

	case intent.PropertiesByBeds:
		beds, ok := numericValue(rec.DatasetValue)
		if !ok {
			return chat.Plain("How many bedrooms are you looking for?"), nil
		}
		props, err := s.store.ByBeds(ctx, int(beds))
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("With %d bedroom%s:", int(beds), plural(int(beds), "", "s")),
			fmt.Sprintf("no properties have %d bedrooms", int(beds))), nil

	case intent.PropertiesByMaxGuests:
		guests, ok := numericValue(rec.DatasetValue)
		if !ok {
			return chat.Plain("For how many guests?"), nil
		}
		props, err := s.store.ByMaxGuests(ctx, int(guests))
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("Sleeping %d or more guests:", int(guests)),
			fmt.Sprintf("no properties sleep %d guests", int(guests))), nil

	case intent.PropertiesWithWifiSpeedAbove:
		mbps, ok := numericValue(rec.DatasetValue)
		if !ok {
			mbps = 0 // no threshold given: report every measured connection
		}
		props, err := s.store.WifiAbove(ctx, int(mbps))
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("WiFi faster than %d Mbps:", int(mbps)),
			fmt.Sprintf("no properties have WiFi above %d Mbps", int(mbps))), nil

	case intent.PropertiesByStyle:
		style := stringValue(rec.DatasetValue)
		if style == "" {
			return chat.Plain("Which style are you looking for? For example: mansion, cabin, bungalow."), nil
		}
		props, err := s.store.ByStyle(ctx, style)
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("%s-style properties:", style),
			fmt.Sprintf("no %s-style properties found", style)), nil

	case intent.PropertiesByType:
		typ := stringValue(rec.DatasetValue)
		if typ == "" {
			return chat.Plain("Which property type? For example: villa, apartment, house."), nil
		}
		props, err := s.store.ByType(ctx, typ)
		if err != nil {
			return chat.Result{}, err
		}
		return listResult(props, fmt.Sprintf("%s properties:", typ),
			fmt.Sprintf("no %s properties found", typ)), nil

	case intent.ListAllAreas:
		areas, err := s.store.Areas(ctx)
		if err != nil {
			return chat.Result{}, err
		}
		if len(areas) == 0 {
			return chat.Plain("There are no properties in the portfolio yet."), nil
		}
		return structured("We have properties in: "+strings.Join(areas, ", ")+".",
			map[string]any{"areas": areas}), nil

	case intent.PropertiesInArea:
		return s.areaResult(ctx, rec)

	case intent.PropertiesNearEachOther:
		props, err := s.store.ListAll(ctx)
		if err != nil {
			return chat.Result{}, err
		}
		pairs := nearbyPairs(props, nearbyThresholdKm)
		if len(pairs) == 0 {
			return chat.Plain(fmt.Sprintf("No two properties are within %.0f km of each other.", nearbyThresholdKm)), nil
		}
		return structured(describePairs(pairs), map[string]any{"pairs": pairs}), nil
	}

	// Unreachable for sanitized records; kept so an unvalidated caller still
	// gets a reply instead of a panic.
	return chat.Plain("I couldn't tell exactly which properties you're asking about. Could you rephrase?"), nil
}

func (s *Service) ratedResult(ctx context.Context, highest bool) (chat.Result, error) {
	var (
		prop *Property
		err  error
		word = "lowest"
	)
	if highest {
		prop, err = s.store.HighestRated(ctx)
		word = "highest"
	} else {
		prop, err = s.store.LowestRated(ctx)
	}
	if errors.Is(err, ErrNotFound) {
		return chat.Plain("There are no properties in the portfolio yet."), nil
	}
	if err != nil {
		return chat.Result{}, err
	}
	return structured(fmt.Sprintf("The %s-rated property is %s at %.1f stars.", word, prop.Name, prop.Rating),
		map[string]any{"property": prop}), nil
}

// areaResult matches by the literal area column first and falls back to a
// geocoded radius search when configured and the literal match comes up empty.
func (s *Service) areaResult(ctx context.Context, rec *intent.Record) (chat.Result, error) {
	area := stringValue(rec.DatasetValue)
	if area == "" {
		return chat.Plain("Which area are you interested in?"), nil
	}

	props, err := s.store.InArea(ctx, area)
	if err != nil {
		return chat.Result{}, err
	}
	if len(props) == 0 && s.geocoder != nil {
		lat, lng, gerr := s.geocoder.GeocodeArea(ctx, area)
		if gerr == nil {
			all, lerr := s.store.ListAll(ctx)
			if lerr != nil {
				return chat.Result{}, lerr
			}
			for _, p := range all {
				if haversineKm(lat, lng, p.Lat, p.Lng) <= areaRadiusKm {
					props = append(props, p)
				}
			}
		}
	}
	return listResult(props, fmt.Sprintf("In %s:", area),
		fmt.Sprintf("no properties found in %s", area)), nil
}

// answerFieldQuestion renders the field the guest asked about. Unknown tags
// fall back to a one-line summary of the property.
func answerFieldQuestion(p *Property, fieldTag string) string {
	switch fieldTag {
	case fieldtype.FieldWifi:
		return fmt.Sprintf("%s has %d Mbps WiFi. The network password is %q.", p.Name, p.WifiSpeed, p.WifiPassword)
	case fieldtype.FieldCheckIn:
		return fmt.Sprintf("Check-in at %s is %s.", p.Name, p.CheckIn)
	case fieldtype.FieldParking:
		return fmt.Sprintf("Parking at %s: %s.", p.Name, p.Parking)
	case fieldtype.FieldPrice:
		return fmt.Sprintf("%s is $%.0f per night.", p.Name, p.PricePerNight)
	case fieldtype.FieldRating:
		return fmt.Sprintf("%s is rated %.1f stars.", p.Name, p.Rating)
	case fieldtype.FieldBeds:
		return fmt.Sprintf("%s has %d bedroom%s.", p.Name, p.Beds, plural(p.Beds, "", "s"))
	case fieldtype.FieldGuests:
		return fmt.Sprintf("%s sleeps up to %d guests.", p.Name, p.MaxGuests)
	case fieldtype.FieldPool:
		if p.HasPool {
			return fmt.Sprintf("Yes, %s has a pool.", p.Name)
		}
		if p.HasHotTub {
			return fmt.Sprintf("%s has no pool, but it does have a hot tub.", p.Name)
		}
		return fmt.Sprintf("%s has neither a pool nor a hot tub.", p.Name)
	case fieldtype.FieldCameras:
		if p.HasCameras {
			return fmt.Sprintf("%s has exterior security cameras.", p.Name)
		}
		return fmt.Sprintf("%s has no cameras.", p.Name)
	case fieldtype.FieldArea:
		return fmt.Sprintf("%s is located in %s.", p.Name, p.Area)
	case fieldtype.FieldOwner:
		return fmt.Sprintf("%s is owned by %s.", p.Name, p.Owner)
	default:
		return fmt.Sprintf("%s: a %s %s in %s, $%.0f per night, sleeps %d, rated %.1f.",
			p.Name, p.Style, p.Type, p.Area, p.PricePerNight, p.MaxGuests, p.Rating)
	}
}

func listResult(props []Property, header, emptyText string) chat.Result {
	if len(props) == 0 {
		return chat.Plain("Sorry, " + emptyText + ".")
	}
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	return structured(fmt.Sprintf("%s %s.", header, strings.Join(names, ", ")),
		map[string]any{"properties": props})
}

func describePairs(pairs []Pair) string {
	parts := make([]string, len(pairs))
	for i, pr := range pairs {
		parts[i] = fmt.Sprintf("%s and %s (%.1f km apart)", pr.A, pr.B, pr.DistanceKm)
	}
	return "Close together: " + strings.Join(parts, "; ") + "."
}

func structured(message string, data map[string]any) chat.Result {
	return chat.StructuredResult(&chat.Structured{
		Type:    "dataset_result",
		Message: message,
		Data:    data,
	})
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

// numericValue parses a threshold like "150" or "$150" out of the extracted
// dataset value.
func numericValue(v *string) (float64, bool) {
	s := strings.TrimPrefix(stringValue(v), "$")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
