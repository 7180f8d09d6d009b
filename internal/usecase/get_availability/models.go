package get_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Request модель запроса на расчет доступных слотов
type Request struct {
	TenantID  uuid.UUID // Арендатор (заведение), обязателен
	Date      time.Time // Дата (время суток игнорируется)
	PartySize int       // Количество гостей
}

// Response модель ответа
// Если Reason не пустой (closed / no_tables), Windows пустой
type Response struct {
	Date    time.Time
	Windows []Window
	Reason  string
}

// Window окно обслуживания со списком слотов
type Window struct {
	ID        int64
	Name      string
	OpenTime  types.TimeOfDay
	CloseTime types.TimeOfDay
	Slots     []domain.Slot // по возрастанию времени начала
}
