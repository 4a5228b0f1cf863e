package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	DefaultCapacity       = 2
	DefaultBedrooms       = 1
	DefaultBathrooms      = 1
	DefaultAvailableRooms = 10
)

type Accommodation struct {
	Base
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Price          float64   `db:"price"`
	AvailableRooms int       `db:"available_rooms"`
	Amenities      Amenities `db:"amenities"`
	ImageURL       *string   `db:"image_url"`
	Available      bool      `db:"available"`
}

// Amenities is the structured document stored in accommodations.amenities.
// Keys it does not know about survive a load/save round trip in Extra.
type Amenities struct {
	Type      string
	Capacity  int
	Bedrooms  int
	Bathrooms int
	Size      float64
	Features  []string
	Images    []string
	Version   int
	Extra     map[string]json.RawMessage
}

// AmenitiesPatch holds the keys present in a partial update.
type AmenitiesPatch struct {
	Type      *string
	Capacity  *int
	Bedrooms  *int
	Bathrooms *int
	Size      *float64
	Features  []string
	Images    []string
}

func (p AmenitiesPatch) IsEmpty() bool {
	return p.Type == nil && p.Capacity == nil && p.Bedrooms == nil && p.Bathrooms == nil &&
		p.Size == nil && p.Features == nil && p.Images == nil
}

var knownAmenityKeys = map[string]struct{}{
	"type": {}, "capacity": {}, "bedrooms": {}, "bathrooms": {},
	"size": {}, "features": {}, "images": {}, "version": {},
}

func (a Amenities) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(a.Extra)+8)
	for k, v := range a.Extra {
		doc[k] = v
	}
	features := a.Features
	if features == nil {
		features = []string{}
	}
	images := a.Images
	if images == nil {
		images = []string{}
	}
	doc["type"] = a.Type
	doc["capacity"] = a.Capacity
	doc["bedrooms"] = a.Bedrooms
	doc["bathrooms"] = a.Bathrooms
	doc["size"] = a.Size
	doc["features"] = features
	doc["images"] = images
	doc["version"] = a.Version
	return json.Marshal(doc)
}

// UnmarshalJSON is lenient: numbers stored as strings and a single string in
// place of a list are accepted, and an empty or null document yields zero values.
func (a *Amenities) UnmarshalJSON(data []byte) error {
	*a = Amenities{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	a.Type = lenientString(doc["type"])
	a.Capacity = lenientInt(doc["capacity"])
	a.Bedrooms = lenientInt(doc["bedrooms"])
	a.Bathrooms = lenientInt(doc["bathrooms"])
	a.Size = lenientFloat(doc["size"])
	a.Features = lenientList(doc["features"])
	a.Images = lenientList(doc["images"])
	a.Version = lenientInt(doc["version"])

	for k, v := range doc {
		if _, known := knownAmenityKeys[k]; known {
			continue
		}
		if a.Extra == nil {
			a.Extra = make(map[string]json.RawMessage)
		}
		a.Extra[k] = v
	}
	return nil
}

// ParseAmenities decodes a stored document; malformed input yields zero values.
func ParseAmenities(raw []byte) Amenities {
	var a Amenities
	if err := a.UnmarshalJSON(raw); err != nil {
		return Amenities{}
	}
	return a
}

// WithDefaults fills the read-time defaults. imageURL backs an empty image list.
func (a Amenities) WithDefaults(imageURL *string) Amenities {
	if a.Capacity <= 0 {
		a.Capacity = DefaultCapacity
	}
	if a.Bedrooms <= 0 {
		a.Bedrooms = DefaultBedrooms
	}
	if a.Bathrooms <= 0 {
		a.Bathrooms = DefaultBathrooms
	}
	if a.Size < 0 {
		a.Size = 0
	}
	if a.Features == nil {
		a.Features = []string{}
	}
	if len(a.Images) == 0 {
		a.Images = []string{}
		if imageURL != nil && *imageURL != "" {
			a.Images = []string{*imageURL}
		}
	}
	return a
}

// Merge applies patch over a shallowly and bumps the version.
func (a Amenities) Merge(patch AmenitiesPatch) Amenities {
	merged := a
	if patch.Type != nil {
		merged.Type = *patch.Type
	}
	if patch.Capacity != nil {
		merged.Capacity = *patch.Capacity
	}
	if patch.Bedrooms != nil {
		merged.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		merged.Bathrooms = *patch.Bathrooms
	}
	if patch.Size != nil {
		merged.Size = *patch.Size
	}
	if patch.Features != nil {
		merged.Features = append([]string(nil), patch.Features...)
	}
	if patch.Images != nil {
		merged.Images = append([]string(nil), patch.Images...)
	}
	merged.Version = a.Version + 1
	return merged
}

// MainImage is the first image, used as the listing thumbnail.
func (a Amenities) MainImage() *string {
	if len(a.Images) == 0 {
		return nil
	}
	img := a.Images[0]
	return &img
}

func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

func lenientFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(lenientString(raw)), 64); err == nil {
		return f
	}
	return 0
}

func lenientInt(raw json.RawMessage) int {
	return int(lenientFloat(raw))
}

func lenientList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var mixed []any
	if err := json.Unmarshal(raw, &mixed); err == nil {
		out := make([]string, 0, len(mixed))
		for _, item := range mixed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if s := lenientString(raw); s != "" && s != "null" {
		return []string{s}
	}
	return nil
}

type AccommodationFilter struct {
	Search    *string
	Type      *string
	Available *bool
}
