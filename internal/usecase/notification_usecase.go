package usecase

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase turns matches into alert mails.
type NotificationUsecase interface {
	// NotifyMatches sends one alert per match and returns one result per attempt, in match order.
	// zonesByID must hold every zone referenced by matches.
	NotifyMatches(
		ctx context.Context,
		listing *entity.Listing,
		matches []entity.MatchResult,
		zonesByID map[uuid.UUID]*entity.SubscriptionZone,
	) []entity.DeliveryResult
}
