package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	getAvailability "github.com/m04kA/SMC-TableAvailability/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
// При закрытом заведении или отсутствии столов windows пустой, а message содержит причину
type AvailabilityResponse struct {
	Date    string   `json:"date"`
	Windows []Window `json:"windows"`
	Message string   `json:"message,omitempty"`
}

// Window окно обслуживания
type Window struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	Slots     []Slot `json:"slots"`
}

// Slot модель слота
type Slot struct {
	StartTime       string `json:"start_time"` // "12:00"
	EndTime         string `json:"end_time"`   // "13:30"
	HasCapacity     bool   `json:"has_capacity"`
	TablesAvailable int    `json:"tables_available"`
	CoversRemaining int    `json:"covers_remaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	windows := make([]Window, len(resp.Windows))
	for i, w := range resp.Windows {
		slots := make([]Slot, len(w.Slots))
		for j, s := range w.Slots {
			slots[j] = Slot{
				StartTime:       s.StartTime.Format(domain.TimeFormat),
				EndTime:         s.EndTime.Format(domain.TimeFormat),
				HasCapacity:     s.HasCapacity,
				TablesAvailable: s.TablesAvailable,
				CoversRemaining: s.CoversRemaining,
			}
		}

		windows[i] = Window{
			ID:        w.ID,
			Name:      w.Name,
			OpenTime:  w.OpenTime.String(),
			CloseTime: w.CloseTime.String(),
			Slots:     slots,
		}
	}

	return &AvailabilityResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Windows: windows,
		Message: resp.Reason,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(tenantID uuid.UUID, dateStr string, partySize int) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		TenantID:  tenantID,
		Date:      date,
		PartySize: partySize,
	}, nil
}
