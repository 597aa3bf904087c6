package dto

type ReleaseJobResponseDTO struct {
	Released []string `json:"released"`
}

type OverdueJobResponseDTO struct {
	// Ran is false when another instance holds the sweep lock.
	Ran    bool     `json:"ran"`
	Marked []string `json:"marked"`
}

type DeletionEligibilityResponseDTO struct {
	UserID  string `json:"user_id"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty" example:"overdue_installments"`
}
