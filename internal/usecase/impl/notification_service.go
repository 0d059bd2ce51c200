package impl

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"sync"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"
	"lostfound/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var alertHTMLTemplate = template.Must(template.New("alert").Parse(`<p>A {{.Kind}} item was posted near <strong>{{.Zone}}</strong>.</p>
<p><strong>{{.Title}}</strong><br>Category: {{.Category}}<br>Distance: {{.Distance}}</p>
{{if .PhotoURL}}<p><img src="{{.PhotoURL}}" alt="{{.Title}}" width="320"></p>
{{end}}<p><a href="{{.Link}}">View the listing</a></p>
`))

type alertContent struct {
	Kind     string
	Zone     string
	Title    string
	Category string
	Distance string
	Link     string
	PhotoURL string
}

type notificationService struct {
	logger          *slog.Logger
	userRepo        repository.UserRepository
	deliveryLogRepo repository.DeliveryLogRepository
	mailSender      service.MailSender
	photoStorage    service.PhotoStorage
	metrics         service.AlertMetrics
	baseURL         string
	concurrency     int
	sendTimeout     time.Duration
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Logger          *slog.Logger
	Config          *config.Config
	UserRepo        repository.UserRepository
	DeliveryLogRepo repository.DeliveryLogRepository
	MailSender      service.MailSender
	PhotoStorage    service.PhotoStorage
	Metrics         service.AlertMetrics
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		logger:          params.Logger,
		userRepo:        params.UserRepo,
		deliveryLogRepo: params.DeliveryLogRepo,
		mailSender:      params.MailSender,
		photoStorage:    params.PhotoStorage,
		metrics:         params.Metrics,
		baseURL:         params.Config.App.BaseURL,
		concurrency:     params.Config.Proximity.NotifyConcurrency,
		sendTimeout:     params.Config.Proximity.SendTimeout,
	}
}

// deliveryJob is one resolved alert waiting for the transport.
type deliveryJob struct {
	match entity.MatchResult
	zone  *entity.SubscriptionZone
	to    string
}

// NotifyMatches implements usecase.NotificationUsecase.
func (s *notificationService) NotifyMatches(
	ctx context.Context,
	listing *entity.Listing,
	matches []entity.MatchResult,
	zonesByID map[uuid.UUID]*entity.SubscriptionZone,
) []entity.DeliveryResult {
	results := make([]entity.DeliveryResult, len(matches))
	if len(matches) == 0 {
		return results
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("listing_id", listing.ID.String()))

	// Destinations are resolved up front so owner lookups are shared across zones.
	jobs := make(map[int]deliveryJob, len(matches))
	owners := make(map[uuid.UUID]*entity.User)
	for i, match := range matches {
		zone, ok := zonesByID[match.ZoneID]
		if !ok || zone == nil {
			results[i] = entity.DeliveryFailed(match.ZoneID, listing.ID, "", entity.ReasonZoneMissing)

			continue
		}

		to, err := s.resolveDestination(ctx, zone, owners)
		if err != nil {
			logger.WarnContext(ctx, "Failed to resolve alert destination",
				slog.String("zone_id", zone.ID.String()),
				slog.Any("error", err),
			)
			results[i] = entity.DeliveryFailed(match.ZoneID, listing.ID, "", "resolve destination: "+err.Error())

			continue
		}
		if to == "" {
			results[i] = entity.DeliveryFailed(match.ZoneID, listing.ID, "", entity.ReasonNoDestination)

			continue
		}

		jobs[i] = deliveryJob{match: match, zone: zone, to: to}
	}

	if len(jobs) > 0 {
		photoURL := s.photoURL(ctx, logger, listing)

		jobCh := make(chan int)
		workerGroup := s.spawnDeliveryWorkers(ctx, s.workerCount(len(jobs)), jobCh, jobs, results, listing, photoURL)
		for i := range matches {
			if _, ok := jobs[i]; ok {
				jobCh <- i
			}
		}
		close(jobCh)
		workerGroup.Wait()
	}

	s.record(ctx, logger, matches, results)

	return results
}

func (s *notificationService) workerCount(jobCount int) int {
	if s.concurrency <= 0 || jobCount < s.concurrency {
		return jobCount
	}

	return s.concurrency
}

func (s *notificationService) spawnDeliveryWorkers(
	ctx context.Context,
	workerCount int,
	jobCh <-chan int,
	jobs map[int]deliveryJob,
	results []entity.DeliveryResult,
	listing *entity.Listing,
	photoURL string,
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			// Each index is owned by exactly one worker, so results needs no lock.
			for idx := range jobCh {
				results[idx] = s.deliver(ctx, listing, jobs[idx], photoURL)
			}
		}()
	}

	return &workerGroup
}

func (s *notificationService) deliver(ctx context.Context, listing *entity.Listing, job deliveryJob, photoURL string) entity.DeliveryResult {
	msg, err := s.composeMessage(listing, job, photoURL)
	if err != nil {
		return entity.DeliveryFailed(job.zone.ID, listing.ID, job.to, "compose message: "+err.Error())
	}

	sendCtx := ctx
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	if err := s.mailSender.Send(sendCtx, msg); err != nil {
		return entity.DeliveryFailed(job.zone.ID, listing.ID, job.to, err.Error())
	}

	return entity.Delivered(job.zone.ID, listing.ID, job.to)
}

// resolveDestination returns the zone address or, failing that, the owner's account e-mail.
func (s *notificationService) resolveDestination(
	ctx context.Context,
	zone *entity.SubscriptionZone,
	owners map[uuid.UUID]*entity.User,
) (string, error) {
	if to := strings.TrimSpace(zone.NotifyEmail); to != "" {
		return to, nil
	}

	owner, cached := owners[zone.OwnerID]
	if !cached {
		user, err := s.userRepo.FindUserByID(ctx, zone.OwnerID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(err, "failed to find zone owner")
		}
		owner = user
		owners[zone.OwnerID] = user
	}
	if owner == nil {
		return "", nil
	}

	return strings.TrimSpace(owner.Email), nil
}

func (s *notificationService) composeMessage(listing *entity.Listing, job deliveryJob, photoURL string) (*service.MailMessage, error) {
	content := alertContent{
		Kind:     string(listing.Kind),
		Zone:     job.zone.Label,
		Title:    listing.Title,
		Category: listing.CategoryName,
		Distance: util.FormatDistanceKm(job.match.DistanceKm),
		Link:     s.listingLink(listing.ID),
		PhotoURL: photoURL,
	}
	if content.Zone == "" {
		content.Zone = "your zone"
	}
	if content.Category == "" {
		content.Category = "Uncategorized"
	}

	var html bytes.Buffer
	if err := alertHTMLTemplate.Execute(&html, content); err != nil {
		return nil, errors.Wrap(err, "failed to render alert html")
	}

	var text strings.Builder
	fmt.Fprintf(&text, "A %s item was posted near %s.\n\n", content.Kind, content.Zone)
	fmt.Fprintf(&text, "%s\nCategory: %s\nDistance: %s\n", content.Title, content.Category, content.Distance)
	if photoURL != "" {
		fmt.Fprintf(&text, "Photo: %s\n", photoURL)
	}
	fmt.Fprintf(&text, "\nView the listing: %s\n", content.Link)

	return &service.MailMessage{
		To:      job.to,
		Subject: fmt.Sprintf("New %s item near %s: %s", content.Kind, content.Zone, content.Title),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func (s *notificationService) listingLink(listingID uuid.UUID) string {
	return s.baseURL + "/posts/" + listingID.String()
}

// photoURL resolves the listing photo once per batch. A failure only drops the photo.
func (s *notificationService) photoURL(ctx context.Context, logger *slog.Logger, listing *entity.Listing) string {
	if listing.PhotoKey == "" {
		return ""
	}

	url, err := s.photoStorage.PhotoURL(ctx, listing.PhotoKey)
	if err != nil {
		logger.WarnContext(ctx, "Failed to presign listing photo", slog.Any("error", err))

		return ""
	}

	return url
}

// record counts every result and writes the audit trail. Failures here are logged only.
func (s *notificationService) record(
	ctx context.Context,
	logger *slog.Logger,
	matches []entity.MatchResult,
	results []entity.DeliveryResult,
) {
	now := time.Now()
	logs := make([]*entity.DeliveryLog, 0, len(results))
	for i, result := range results {
		s.metrics.ObserveDelivery(result.Status)
		if result.Status == entity.DeliveryStatusFailed {
			logger.WarnContext(ctx, "Alert delivery failed",
				slog.String("zone_id", result.ZoneID.String()),
				slog.String("reason", result.Reason),
			)
		}

		logs = append(logs, &entity.DeliveryLog{
			ID:         uuid.New(),
			ListingID:  result.ListingID,
			ZoneID:     result.ZoneID,
			Recipient:  result.To,
			DistanceKm: matches[i].DistanceKm,
			Status:     result.Status,
			Reason:     result.Reason,
			SentAt:     now,
		})
	}

	if err := s.deliveryLogRepo.BatchCreateDeliveryLogs(ctx, logs); err != nil {
		logger.ErrorContext(ctx, "Failed to write delivery logs", slog.Any("error", err), slog.Int("count", len(logs)))
	}
}
