package service

import (
	"time"

	"lostfound/internal/domain/entity"
)

// AlertMetrics records proximity matching and delivery outcomes.
type AlertMetrics interface {
	// ObserveForwardMatch records one publish-time scan and how many zones it matched.
	ObserveForwardMatch(matched int)
	// ObserveZonesSkipped counts zones excluded from matching because they were unmatchable.
	ObserveZonesSkipped(count int)
	// ObserveDelivery counts one notification attempt by outcome.
	ObserveDelivery(status entity.DeliveryStatus)
	// ObserveNearbyQuery records the duration of one dashboard reverse query.
	ObserveNearbyQuery(duration time.Duration)
}
