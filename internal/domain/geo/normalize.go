package geo

import (
	"encoding/json"
	"strconv"
	"strings"

	"lostfound/internal/domain/entity"
)

// Keys accepted for each coordinate, in lookup order.
var (
	latKeys = []string{"lat", "latitude"}
	lngKeys = []string{"lng", "lon", "longitude"}
)

// nestedGeoKey is the wrapper key some documents keep their point under.
const nestedGeoKey = "geo"

// Normalize coerces a loosely shaped location into a GeoPoint.
// It accepts GeoPoint values, maps with lat/lng fields (optionally nested under "geo",
// with the top-level fields used when the nested value is unusable),
// and raw JSON objects of the same shape. Coordinates may be numbers or numeric strings.
// The second result is false when either coordinate is missing, non-numeric,
// non-finite or outside the WGS84 range. Normalize never panics.
func Normalize(raw any) (entity.GeoPoint, bool) {
	switch v := raw.(type) {
	case nil:
		return entity.GeoPoint{}, false
	case entity.GeoPoint:
		return checked(v)
	case *entity.GeoPoint:
		if v == nil {
			return entity.GeoPoint{}, false
		}

		return checked(*v)
	case map[string]any:
		return fromMap(v)
	case json.RawMessage:
		return fromJSON(v)
	case []byte:
		return fromJSON(v)
	default:
		return entity.GeoPoint{}, false
	}
}

func fromJSON(data []byte) (entity.GeoPoint, bool) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return entity.GeoPoint{}, false
	}

	return fromMap(m)
}

func fromMap(m map[string]any) (entity.GeoPoint, bool) {
	if m == nil {
		return entity.GeoPoint{}, false
	}

	if nested, ok := m[nestedGeoKey]; ok && nested != nil {
		if point, ok := Normalize(nested); ok {
			return point, true
		}
	}

	lat, ok := lookupNumber(m, latKeys)
	if !ok {
		return entity.GeoPoint{}, false
	}
	lng, ok := lookupNumber(m, lngKeys)
	if !ok {
		return entity.GeoPoint{}, false
	}

	return checked(entity.GeoPoint{Lat: lat, Lng: lng})
}

func lookupNumber(m map[string]any, keys []string) (float64, bool) {
	for _, key := range keys {
		if value, ok := m[key]; ok {
			return toFloat(value)
		}
	}

	return 0, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)

		return f, err == nil
	default:
		return 0, false
	}
}

func checked(p entity.GeoPoint) (entity.GeoPoint, bool) {
	if !p.Valid() {
		return entity.GeoPoint{}, false
	}

	return p, true
}
