package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// UseCase структурная проверка дат для подсказок в календаре
//
// Дата считается доступной, если в ее день недели есть активное окно и есть хотя бы один
// стол, вмещающий компанию. Бронирования НЕ учитываются: дата может оказаться полностью
// занятой, точный ответ дает только расчет слотов на конкретную дату.
type UseCase struct {
	tableRepo    TableRepository
	windowRepo   WindowRepository
	timeProvider TimeProvider
	location     *time.Location
	maxWeeks     int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	windowRepo WindowRepository,
	location *time.Location,
	maxWeeks int,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	if maxWeeks < domain.MinHorizonWeeks {
		maxWeeks = domain.MaxHorizonWeeks
	}

	return &UseCase{
		tableRepo:    tableRepo,
		windowRepo:   windowRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		maxWeeks:     maxWeeks,
		logger:       logger,
	}
}

// Execute выполняет use case получения дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxWeeks); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableDates: tenant=%s, party_size=%d, weeks=%d", req.TenantID, req.PartySize, req.Weeks)

	// 2. Дни недели с активными окнами и наличие подходящих столов - независимые чтения
	var (
		weekdays []int
		tables   []*domain.Table
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		weekdays, err = uc.windowRepo.ListActiveWeekdays(gctx, req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to get active weekdays: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		tables, err = uc.tableRepo.ListQualifying(gctx, req.TenantID, req.PartySize)
		if err != nil {
			return fmt.Errorf("failed to get tables: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableDates: tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 3. Нет окон или нет столов - пустой список при любом горизонте
	if len(weekdays) == 0 || len(tables) == 0 {
		uc.logger.Info("GetAvailableDates: nothing available (active_weekdays=%d, tables=%d)", len(weekdays), len(tables))
		return &Response{Dates: []time.Time{}}, nil
	}

	// 4. Перебираем дни от сегодняшнего (в часовом поясе заведения)
	dates := scanDates(uc.timeProvider.Now().In(uc.location), req.Weeks, weekdays)

	uc.logger.Info("GetAvailableDates: %d dates for tenant=%s", len(dates), req.TenantID)

	return &Response{Dates: dates}, nil
}

// scanDates возвращает даты из [today, today + weeks*7) с днем недели из activeWeekdays
func scanDates(now time.Time, weeks int, activeWeekdays []int) []time.Time {
	active := make(map[int]struct{}, len(activeWeekdays))
	for _, wd := range activeWeekdays {
		active[wd] = struct{}{}
	}

	today := domain.DateOnly(now)
	dates := make([]time.Time, 0, weeks*len(active))

	for i := 0; i < weeks*7; i++ {
		d := today.AddDate(0, 0, i)
		if _, ok := active[domain.WeekdayOf(d)]; ok {
			dates = append(dates, d)
		}
	}

	return dates
}
