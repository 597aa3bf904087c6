package settlement

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/repasse/internal/domain"
)

var modalityOffsets = map[domain.Modality]int{
	domain.ModalityD1:  1,
	domain.ModalityD15: 15,
	domain.ModalityD30: 30,
}

// OffsetDays is the contractual delay in calendar days.
func OffsetDays(m domain.Modality) (int, error) {
	days, ok := modalityOffsets[m]
	if !ok {
		return 0, domain.Validationf("unknown modality %q", m)
	}
	return days, nil
}

// ReleaseDate is paymentDate plus the modality offset. The result is stored on
// the transaction at creation and never recomputed.
func ReleaseDate(paymentDate time.Time, m domain.Modality) (time.Time, error) {
	days, err := OffsetDays(m)
	if err != nil {
		return time.Time{}, fmt.Errorf("schedule release: %w", err)
	}
	return paymentDate.AddDate(0, 0, days), nil
}
