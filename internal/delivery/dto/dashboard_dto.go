package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the staff-only monthly overview: head counts,
// per-status appointment counts, patient demographics and completed revenue.
type DashboardResponse struct {
	Year              int              `json:"year"`
	Month             int              `json:"month"`
	PatientsCount     int64            `json:"patients_count"`
	DentistsCount     int64            `json:"dentists_count"`
	AppointmentsCount int64            `json:"appointments_count"`
	StatusCounts      map[string]int64 `json:"status_counts"`
	PatientsByGender  map[string]int64 `json:"patients_by_gender"`
	DailyNewPatients  []int64          `json:"daily_new_patients"`
	CompletedRevenue  decimal.Decimal  `json:"completed_revenue"`
}
