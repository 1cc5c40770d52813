package skinlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/skintrack/skintrack/internal/domain/rating"
	"github.com/skintrack/skintrack/internal/infra/kvstore"
	apperrors "github.com/skintrack/skintrack/pkg/errors"
	"github.com/skintrack/skintrack/pkg/util"
)

// Service exposes day log and trend workflows.
type Service interface {
	GetDayLog(ctx context.Context, userID int64, date string) (DayLog, error)
	SaveDayLog(ctx context.Context, userID int64, log DayLog) error
	SaveSelfies(ctx context.Context, userID int64, date string, slot SelfieSlot, urls []*string) error
	CreateEntry(ctx context.Context, userID int64, date string, score float64, notes string, factors []Factor) (Entry, error)
	Trend(ctx context.Context, userID int64, horizon Horizon) (TrendReport, error)
}

var factorCategories = []FactorCategory{
	FactorDiet, FactorSleep, FactorWater, FactorStress,
	FactorMakeup, FactorWeather, FactorCycle,
}

type service struct {
	repo   Repository
	store  kvstore.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the skin log domain.
func NewService(repo Repository, store kvstore.Store, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		store:  store,
		logger: logger.With("component", "skinlog.service"),
		now:    util.NowUTC,
	}
}

func (s *service) GetDayLog(ctx context.Context, userID int64, date string) (DayLog, error) {
	if _, err := util.ParseDate(date); err != nil {
		return DayLog{}, apperrors.Wrap("invalid_input", "invalid date", err)
	}

	log := DayLog{Date: date}
	log.Notes = readKey[string](ctx, s, NotesKey(userID, date))
	log.WaterIntake = readKey[int](ctx, s, WaterKey(userID, date))
	log.Mood = readKey[string](ctx, s, MoodKey(userID, date))
	log.Sleep = readKey[string](ctx, s, SleepKey(userID, date))
	log.Stress = readKey[string](ctx, s, StressKey(userID, date))
	log.AMSelfies = readKey[[]*string](ctx, s, SelfieKey(userID, SelfieAM, date))
	log.PMSelfies = readKey[[]*string](ctx, s, SelfieKey(userID, SelfiePM, date))

	for _, category := range factorCategories {
		factors := readKey[[]Factor](ctx, s, FactorKey(userID, category, date))
		if len(factors) > 0 {
			if log.Factors == nil {
				log.Factors = make(map[FactorCategory][]Factor)
			}
			log.Factors[category] = factors
		}
	}
	return log, nil
}

// readKey loads one typed key. A corrupted payload is logged and the key
// removed so the next load does not fail the same way again.
func readKey[T any](ctx context.Context, s *service, key string) T {
	value, ok, err := kvstore.GetJSON[T](ctx, s.store, key)
	var zero T
	if err != nil {
		s.logger.Warn("dropping corrupted log key", "key", key, "error", err)
		_ = s.store.Remove(ctx, key)
		return zero
	}
	if !ok {
		return zero
	}
	return value
}

func (s *service) SaveDayLog(ctx context.Context, userID int64, log DayLog) error {
	if _, err := util.ParseDate(log.Date); err != nil {
		return apperrors.Wrap("invalid_input", "invalid date", err)
	}

	batch := newKeyBatch()
	batch.put(NotesKey(userID, log.Date), log.Notes, log.Notes != "")
	batch.put(WaterKey(userID, log.Date), log.WaterIntake, log.WaterIntake > 0)
	batch.put(MoodKey(userID, log.Date), log.Mood, log.Mood != "")
	batch.put(SleepKey(userID, log.Date), log.Sleep, log.Sleep != "")
	batch.put(StressKey(userID, log.Date), log.Stress, log.Stress != "")
	for _, category := range factorCategories {
		factors := log.Factors[category]
		batch.put(FactorKey(userID, category, log.Date), factors, len(factors) > 0)
	}
	if batch.err != nil {
		return apperrors.Wrap("skinlog_error", "failed to encode day log", batch.err)
	}
	if err := s.store.Replace(ctx, batch.set, batch.remove); err != nil {
		return apperrors.Wrap("skinlog_error", "failed to save day log", err)
	}
	return nil
}

func (s *service) SaveSelfies(ctx context.Context, userID int64, date string, slot SelfieSlot, urls []*string) error {
	if _, err := util.ParseDate(date); err != nil {
		return apperrors.Wrap("invalid_input", "invalid date", err)
	}
	if slot != SelfieAM && slot != SelfiePM {
		return apperrors.Wrap("invalid_input", "selfie slot must be am or pm", nil)
	}
	if err := kvstore.SetJSON(ctx, s.store, SelfieKey(userID, slot, date), urls, 0); err != nil {
		return apperrors.Wrap("skinlog_error", "failed to save selfies", err)
	}
	return nil
}

func (s *service) CreateEntry(ctx context.Context, userID int64, date string, score float64, notes string, factors []Factor) (Entry, error) {
	if _, err := util.ParseDate(date); err != nil {
		return Entry{}, apperrors.Wrap("invalid_input", "invalid date", err)
	}
	entry := Entry{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		OverallScore: rating.Clamp(score),
		Notes:        notes,
		Factors:      factors,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return Entry{}, apperrors.Wrap("skinlog_error", "failed to create entry", err)
	}
	return entry, nil
}

func (s *service) Trend(ctx context.Context, userID int64, horizon Horizon) (TrendReport, error) {
	switch horizon {
	case HorizonDaily, HorizonWeekly, HorizonMonthly:
	default:
		return TrendReport{}, apperrors.Wrap("invalid_input", "horizon must be daily, weekly or monthly", nil)
	}
	today := s.now()
	from, to := TrendWindow(horizon, today)
	scores, err := s.repo.ListScores(ctx, userID, from, to)
	if err != nil {
		return TrendReport{}, apperrors.Wrap("skinlog_error", "failed to load scores", err)
	}
	return BuildTrend(horizon, scores, today), nil
}

type keyBatch struct {
	set    map[string]kvstore.Entry
	remove []string
	err    error
}

func newKeyBatch() *keyBatch {
	return &keyBatch{set: make(map[string]kvstore.Entry)}
}

func (b *keyBatch) put(key string, value any, present bool) {
	if !present {
		b.remove = append(b.remove, key)
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}
	b.set[key] = kvstore.Entry{Value: payload}
}
