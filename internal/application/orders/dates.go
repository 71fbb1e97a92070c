package orders

import (
	"time"

	"github.com/jcastro/pedidos-api/internal/domain"
)

// dateLayout formato de fecha de los requests HTTP.
const dateLayout = "2006-01-02"

// parseDate convierte "YYYY-MM-DD" a *time.Time; vacío es nil sin error.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
