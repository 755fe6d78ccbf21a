package service

import (
	"context"
	"strings"
	"time"

	"github.com/ecozbite/ai-service/internal/clock"
	"github.com/ecozbite/ai-service/internal/models"
)

const day = 24 * time.Hour

// maxYear is the last year an expiry date can be reported in.
const maxYear = 9999

// ShelfLifeRepository interface for shelf-life lookups
type ShelfLifeRepository interface {
	GetDays(ctx context.Context, category string) (days int, known bool)
}

// ExpiryService estimates expiry dates from product categories
type ExpiryService struct {
	repo  ShelfLifeRepository
	clock clock.Clock
}

// NewExpiryService creates a new expiry service
func NewExpiryService(repo ShelfLifeRepository, clk clock.Clock) *ExpiryService {
	return &ExpiryService{
		repo:  repo,
		clock: clk,
	}
}

// PredictExpiry estimates when a product of the given category expires and
// how urgent it is. A missing purchase date means "bought now".
func (s *ExpiryService) PredictExpiry(ctx context.Context, req models.ExpiryRequest) (*models.ExpiryPrediction, error) {
	if req.Category == nil {
		return nil, ErrCategoryRequired
	}

	now := s.clock.Now()
	category := strings.ToLower(*req.Category)

	purchaseDate := now
	if req.PurchaseDate != nil {
		parsed, err := ParseDate(*req.PurchaseDate, now.Location())
		if err != nil {
			return nil, NewInternalError("predict expiry", err)
		}
		purchaseDate = parsed
	}

	shelfLife, _ := s.repo.GetDays(ctx, category)
	expiryDate := purchaseDate.Add(time.Duration(shelfLife) * day)
	if expiryDate.Year() > maxYear {
		return nil, NewInternalError("predict expiry", errDateOutOfRange)
	}
	daysLeft := DaysBetween(now, expiryDate)

	return &models.ExpiryPrediction{
		ExpiryDate:          expiryDate,
		DaysUntilExpiry:     daysLeft,
		Status:              FreshnessStatus(daysLeft),
		Category:            category,
		EstimatedExpiryDays: shelfLife,
	}, nil
}

// DaysBetween returns the whole days from now until t, rounded toward
// negative infinity: 23h is 0 days and -1h is -1 day. It works on Unix
// seconds, so spans longer than a time.Duration are exact.
func DaysBetween(now, t time.Time) int {
	secs := t.Unix() - now.Unix()
	if t.Nanosecond() < now.Nanosecond() {
		secs--
	}

	const secsPerDay = int64(day / time.Second)
	days := secs / secsPerDay
	if secs%secsPerDay < 0 {
		days--
	}
	return int(days)
}

// FreshnessStatus classifies days remaining until expiry.
func FreshnessStatus(daysUntilExpiry int) string {
	switch {
	case daysUntilExpiry < 0:
		return models.StatusExpired
	case daysUntilExpiry <= 1:
		return models.StatusCritical
	case daysUntilExpiry <= 3:
		return models.StatusWarning
	default:
		return models.StatusFresh
	}
}

// dateLayouts are tried in order. The naive layouts carry no offset and are
// read in the caller's location.
var dateLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02 15:04:05.999999999Z07:00", false},
	{"2006-01-02 15:04:05.999999999", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", true},
}

// ParseDate parses an ISO-8601 timestamp. Values without an offset are
// interpreted in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, l := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if l.naive {
			t, err = time.ParseInLocation(l.layout, value, loc)
		} else {
			t, err = time.Parse(l.layout, value)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalidDate(value)
}
