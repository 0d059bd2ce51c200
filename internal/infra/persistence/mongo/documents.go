package mongo

import (
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/geo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type zoneDocument struct {
	ID          string        `bson:"_id"`
	OwnerID     string        `bson:"owner_id"`
	Enabled     bool          `bson:"enabled"`
	Center      bson.RawValue `bson:"center,omitempty"` // Loosely shaped; resolved through geo.Normalize.
	RadiusKm    float64       `bson:"radius_km"`
	NotifyEmail string        `bson:"notify_email,omitempty"`
	Label       string        `bson:"label,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}

type listingDocument struct {
	ID           string    `bson:"_id"`
	OwnerID      string    `bson:"owner_id"`
	Kind         string    `bson:"kind"`
	Title        string    `bson:"title"`
	CategoryName string    `bson:"category_name"`
	Description  string    `bson:"description,omitempty"`
	PhotoKey     string    `bson:"photo_key,omitempty"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type listingLocationDocument struct {
	ListingID  string        `bson:"_id"`
	Geo        bson.RawValue `bson:"geo,omitempty"`
	PlaceLabel string        `bson:"place_label,omitempty"`
	CreatedAt  time.Time     `bson:"created_at"`
}

type userDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	Roles     []string  `bson:"roles"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// --- Mapper Functions ---

// toZoneEntity converts a stored zone. ok is false when the ids are unusable.
// An unreadable center leaves Center nil, which makes the zone unmatchable rather than failing the scan.
func toZoneEntity(doc *zoneDocument) (*entity.SubscriptionZone, bool) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, false
	}
	ownerID, err := uuid.Parse(doc.OwnerID)
	if err != nil {
		return nil, false
	}

	return &entity.SubscriptionZone{
		ID:          id,
		OwnerID:     ownerID,
		Enabled:     doc.Enabled,
		Center:      decodeGeo(doc.Center),
		RadiusKm:    doc.RadiusKm,
		NotifyEmail: doc.NotifyEmail,
		Label:       doc.Label,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, true
}

func toListingEntity(doc *listingDocument) (*entity.Listing, bool) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, false
	}
	ownerID, err := uuid.Parse(doc.OwnerID)
	if err != nil {
		return nil, false
	}

	return &entity.Listing{
		ID:           id,
		OwnerID:      ownerID,
		Kind:         entity.ListingKind(doc.Kind),
		Title:        doc.Title,
		CategoryName: doc.CategoryName,
		Description:  doc.Description,
		PhotoKey:     doc.PhotoKey,
		Status:       entity.ListingStatus(doc.Status),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, true
}

func toListingLocationEntity(doc *listingLocationDocument) (*entity.ListingLocation, bool) {
	listingID, err := uuid.Parse(doc.ListingID)
	if err != nil {
		return nil, false
	}

	return &entity.ListingLocation{
		ListingID:  listingID,
		Geo:        decodeGeo(doc.Geo),
		PlaceLabel: doc.PlaceLabel,
		CreatedAt:  doc.CreatedAt,
	}, true
}

func toUserEntity(doc *userDocument) (*entity.User, bool) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, false
	}

	return &entity.User{
		ID:        id,
		Email:     doc.Email,
		Name:      doc.Name,
		Roles:     entity.RolesFromStrings(doc.Roles),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, true
}

// decodeGeo turns a stored point of any shape into a GeoPoint, or nil when it cannot be used.
func decodeGeo(raw bson.RawValue) *entity.GeoPoint {
	if raw.Type != bson.TypeEmbeddedDocument {
		return nil
	}

	var doc bson.M
	if err := raw.Unmarshal(&doc); err != nil {
		return nil
	}

	point, ok := geo.Normalize(plain(doc))
	if !ok {
		return nil
	}

	return &point
}

// plain rewrites driver-specific containers and numbers into the shapes geo.Normalize accepts.
func plain(value any) any {
	switch v := value.(type) {
	case bson.M:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = plain(item)
		}

		return out
	case bson.D:
		out := make(map[string]any, len(v))
		for _, elem := range v {
			out[elem.Key] = plain(elem.Value)
		}

		return out
	case primitive.Decimal128:
		return v.String()
	default:
		return v
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
