package impl

import (
	"context"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/fx"
)

const deliveryHistoryLimit = 100

var listingEvents = fsm.Events{
	{Name: string(entity.ListingEventApprove), Src: []string{string(entity.ListingStatusPending)}, Dst: string(entity.ListingStatusPublished)},
	{Name: string(entity.ListingEventReject), Src: []string{string(entity.ListingStatusPending)}, Dst: string(entity.ListingStatusRejected)},
	{Name: string(entity.ListingEventResolve), Src: []string{string(entity.ListingStatusPublished)}, Dst: string(entity.ListingStatusResolved)},
	{Name: string(entity.ListingEventReopen), Src: []string{string(entity.ListingStatusResolved)}, Dst: string(entity.ListingStatusPublished)},
}

// moderationEvents may only be applied by admins. Every other event is open to the owner too.
var moderationEvents = map[entity.ListingEvent]bool{
	entity.ListingEventApprove: true,
	entity.ListingEventReject:  true,
}

type listingService struct {
	logger          *slog.Logger
	listingRepo     repository.ListingRepository
	deliveryLogRepo repository.DeliveryLogRepository
	proximity       usecase.ProximityUsecase
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	Logger          *slog.Logger
	ListingRepo     repository.ListingRepository
	DeliveryLogRepo repository.DeliveryLogRepository
	Proximity       usecase.ProximityUsecase
}

// NewListingService creates a new listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		logger:          params.Logger,
		listingRepo:     params.ListingRepo,
		deliveryLogRepo: params.DeliveryLogRepo,
		proximity:       params.Proximity,
	}
}

// TransitionListing implements usecase.ListingUsecase.
func (s *listingService) TransitionListing(
	ctx context.Context,
	actor entity.Actor,
	listingID uuid.UUID,
	event entity.ListingEvent,
) (*usecase.TransitionResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("listing_id", listingID.String()),
		slog.String("event", string(event)),
	)

	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if moderationEvents[event] && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("only moderators can " + string(event) + " listings")
	}
	if listing.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	machine := s.newMachine(listing)
	if !machine.Can(string(event)) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"cannot " + string(event) + " a " + string(listing.Status) + " listing",
		)
	}

	from := listing.Status
	if err := machine.Event(ctx, string(event)); err != nil {
		return nil, s.transitionError(err)
	}
	listing.Status = entity.ListingStatus(machine.Current())

	logger.InfoContext(ctx, "Listing status changed",
		slog.String("from", string(from)),
		slog.String("to", string(listing.Status)),
		slog.String("actor_id", actor.UserID.String()),
	)

	result := &usecase.TransitionResult{Listing: listing, From: from, To: listing.Status}
	// Only the first publication alerts subscribers; reopen stays silent.
	if event == entity.ListingEventApprove {
		report, err := s.proximity.NotifyListingPublished(ctx, listing.ID)
		if err != nil {
			// The listing is already public; a failed alert run does not undo that.
			logger.ErrorContext(ctx, "Proximity alerts failed", slog.Any("error", err))
		}
		result.Report = report
	}

	return result, nil
}

// ListDeliveries implements usecase.ListingUsecase.
func (s *listingService) ListDeliveries(ctx context.Context, actor entity.Actor, listingID uuid.UUID) ([]*entity.DeliveryLog, error) {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	logs, err := s.deliveryLogRepo.FindDeliveryLogsByListing(ctx, listingID, deliveryHistoryLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs")
	}

	return logs, nil
}

func (s *listingService) findListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// newMachine builds a state machine positioned at the listing's stored status.
// Leaving a state persists the change with a compare-and-set; a failed write cancels the event.
func (s *listingService) newMachine(listing *entity.Listing) *fsm.FSM {
	return fsm.NewFSM(
		string(listing.Status),
		listingEvents,
		fsm.Callbacks{
			"before_event": func(ctx context.Context, e *fsm.Event) {
				err := s.listingRepo.UpdateListingStatus(ctx, listing.ID,
					entity.ListingStatus(e.Src), entity.ListingStatus(e.Dst))
				if err != nil {
					e.Cancel(err)
				}
			},
		},
	)
}

func (s *listingService) transitionError(err error) error {
	var canceled fsm.CanceledError
	if errors.As(err, &canceled) && canceled.Err != nil {
		err = canceled.Err
	}

	switch {
	case errors.Is(err, repository.ErrStatusConflict):
		return domainerrors.ErrInvalidTransition.WithDetails("listing status changed concurrently")
	case errors.Is(err, repository.ErrListingNotFound):
		return domainerrors.ErrListingNotFound
	default:
		return errors.Wrap(domainerrors.ErrListingUpdateFailed, err.Error())
	}
}
