package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrpay/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const holidayYearKeyPrefix = "holidays:year:"

func holidayYearKey(year int) string {
	return fmt.Sprintf("%s%d", holidayYearKeyPrefix, year)
}

var ErrInvalidYear = apperror.New(
	apperror.CodeInvalidInput,
	"year must be a four-digit year",
	http.StatusBadRequest,
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	HolidaySetForYear(ctx context.Context, year int) (HolidaySet, error)
	GetAll(ctx context.Context, year int) ([]HolidayResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

type cachedHoliday struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// HolidaySetForYear returns the holiday snapshot for a year. The year's
// calendar is cached in Redis and concurrent cold fetches are collapsed
// through singleflight so a payroll batch never hammers the table.
func (s *service) HolidaySetForYear(ctx context.Context, year int) (HolidaySet, error) {
	if year < 1000 || year > 9999 {
		return nil, ErrInvalidYear
	}

	holidays, err := s.holidaysForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return NewHolidaySet(holidays), nil
}

func (s *service) GetAll(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 1000 || year > 9999 {
		return nil, ErrInvalidYear
	}

	holidays, err := s.holidaysForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = HolidayResponse{
			Name:     h.Name,
			Date:     DateOnly(h.HolidayDate).Format(dateLayout),
			Category: h.Category,
		}
	}
	return resp, nil
}

func (s *service) holidaysForYear(ctx context.Context, year int) ([]Holiday, error) {
	cacheKey := holidayYearKey(year)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if holidays, err := decodeCachedHolidays(cached); err == nil {
				return holidays, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		holidays, err := s.repo.FindByYear(ctx, year)
		if err != nil {
			s.logger.Error("fetch holidays failed", zap.Int("year", year), zap.Error(err))
			return nil, err
		}

		if s.rdb != nil {
			entries := make([]cachedHoliday, len(holidays))
			for i, h := range holidays {
				entries[i] = cachedHoliday{
					Name:     h.Name,
					Date:     DateOnly(h.HolidayDate).Format(dateLayout),
					Category: h.Category,
				}
			}
			if payload, marshalErr := json.Marshal(entries); marshalErr == nil {
				_ = s.rdb.Set(ctx, cacheKey, payload, 12*time.Hour).Err()
			}
		}

		return holidays, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Holiday), nil
}

func decodeCachedHolidays(raw string) ([]Holiday, error) {
	var entries []cachedHoliday
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}

	holidays := make([]Holiday, len(entries))
	for i, e := range entries {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return nil, err
		}
		holidays[i] = Holiday{
			Name:        e.Name,
			HolidayDate: d,
			Category:    e.Category,
		}
	}
	return holidays, nil
}
