package get_available_dates

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение дат с возможной доступностью
type Request struct {
	TenantID  uuid.UUID
	PartySize int
	Weeks     int // горизонт в неделях, начиная с сегодняшнего дня
}

// Response список дат по возрастанию (полночь в часовом поясе заведения)
type Response struct {
	Dates []time.Time
}
