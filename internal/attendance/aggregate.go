package attendance

// MonthlySummary is the per-employee attendance rollup for one month.
// Absent days are deliberately not counted here: payroll derives absence
// as the working days left unaccounted for.
type MonthlySummary struct {
	PresentDays int
	LateDays    int
	HalfDays    int
}

// Aggregate rolls up one employee's records for one month. One unit per
// PRESENT record (late ones also increment LateDays), one unit per
// HALF_DAY record. ABSENT and ON_LEAVE rows contribute nothing.
func Aggregate(records []Attendance) MonthlySummary {
	var summary MonthlySummary
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			summary.PresentDays++
			if r.IsLate {
				summary.LateDays++
			}
		case StatusHalfDay:
			summary.HalfDays++
		}
	}
	return summary
}
