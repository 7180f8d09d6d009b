package get_availability

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// UseCase расчет доступных слотов на дату для компании заданного размера
// Не хранит состояния и ничего не пишет: каждый вызов пересчитывает результат по текущим данным
type UseCase struct {
	tableRepo       TableRepository
	windowRepo      WindowRepository
	reservationRepo ReservationRepository
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс заведения, в нем интерпретируются дата запроса и время окон
func NewUseCase(
	tableRepo TableRepository,
	windowRepo WindowRepository,
	reservationRepo ReservationRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}

	return &UseCase{
		tableRepo:       tableRepo,
		windowRepo:      windowRepo,
		reservationRepo: reservationRepo,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	weekday := domain.WeekdayOf(date)
	dayStart, dayEnd := domain.DayBounds(date)

	uc.logger.Info("GetAvailability: tenant=%s, date=%s, weekday=%d, party_size=%d",
		req.TenantID, date.Format(domain.DateFormat), weekday, req.PartySize)

	// 2. Читаем окна, столы и бронирования параллельно: между чтениями нет зависимостей
	var (
		windows      []*domain.ServiceWindow
		tables       []*domain.Table
		reservations []*domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		windows, err = uc.windowRepo.ListActiveByWeekday(gctx, req.TenantID, weekday)
		if err != nil {
			return fmt.Errorf("failed to get service windows: %w", err)
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

	g.Go(func() error {
		var err error
		reservations, err = uc.reservationRepo.ListOccupying(gctx, req.TenantID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to get reservations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailability: tenant=%s, date=%s: %v", req.TenantID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 3. Нет пригодных окон в этот день - заведение закрыто
	windows = usableWindows(windows, uc.logger)
	if len(windows) == 0 {
		uc.logger.Info("GetAvailability: closed on %s (weekday=%d)", date.Format(domain.DateFormat), weekday)
		return &Response{Date: date, Windows: []Window{}, Reason: domain.ReasonClosed}, nil
	}

	// 4. Нет столов, вмещающих компанию
	if len(tables) == 0 {
		uc.logger.Info("GetAvailability: no tables for party_size=%d", req.PartySize)
		return &Response{Date: date, Windows: []Window{}, Reason: domain.ReasonNoTables}, nil
	}

	// 5. Пул столов общий для всех окон дня
	totalTables := len(tables)

	// 6. Считаем слоты по каждому окну в порядке реестра
	result := make([]Window, 0, len(windows))
	slotsCount := 0
	for _, w := range windows {
		slots := buildWindowSlots(w, date, totalTables, reservations, req.PartySize)
		slotsCount += len(slots)

		result = append(result, Window{
			ID:        w.ID,
			Name:      w.Name,
			OpenTime:  w.OpenTime,
			CloseTime: w.CloseTime,
			Slots:     slots,
		})
	}

	uc.logger.Info("GetAvailability: generated %d slots in %d windows for tenant=%s, date=%s (tables=%d, reservations=%d)",
		slotsCount, len(result), req.TenantID, date.Format(domain.DateFormat), totalTables, len(reservations))

	return &Response{
		Date:    date,
		Windows: result,
	}, nil
}
