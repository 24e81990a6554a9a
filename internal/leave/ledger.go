package leave

import (
	"sort"
	"time"

	"go-hrpay/internal/calendar"
)

// Balance is the running balance value threaded through a payroll run.
// It is a plain value: the fold never mutates shared state.
type Balance struct {
	CasualRemaining       int
	SickRemaining         int
	UnpaidDaysAccumulated int
}

// Split is the paid/unpaid attribution of a single leave request's
// working days within the target month.
type Split struct {
	CasualDaysConsumed int
	SickDaysConsumed   int
	UnpaidDaysProduced int
}

// ApplyLeave depletes the matching balance for one request and spills the
// remainder into unpaid days. Conservation holds for casual and sick:
// consumed + unpaid == workingDays. Other-category leave is fully paid and
// balance-neutral.
func ApplyLeave(category Category, workingDays int, bal Balance) (Split, Balance) {
	if workingDays <= 0 {
		return Split{}, bal
	}

	var split Split
	switch category {
	case CategoryCasual:
		split.CasualDaysConsumed = min(workingDays, bal.CasualRemaining)
		split.UnpaidDaysProduced = workingDays - split.CasualDaysConsumed
		bal.CasualRemaining -= split.CasualDaysConsumed
	case CategorySick:
		split.SickDaysConsumed = min(workingDays, bal.SickRemaining)
		split.UnpaidDaysProduced = workingDays - split.SickDaysConsumed
		bal.SickRemaining -= split.SickDaysConsumed
	case CategoryUnpaid:
		split.UnpaidDaysProduced = workingDays
	default:
		// Maternity, emergency, anything unconfigured: paid, no deduction.
	}

	bal.UnpaidDaysAccumulated += split.UnpaidDaysProduced
	return split, bal
}

// RequestConsumption pairs a request with its attribution for the month.
type RequestConsumption struct {
	Request Leave
	Days    int
	Split   Split
}

// MonthConsumption is the aggregate outcome of folding one month's approved
// leave requests over a prior balance.
type MonthConsumption struct {
	CasualTaken int
	SickTaken   int
	UnpaidDays  int
	Balance     Balance
	PerRequest  []RequestConsumption
}

// ConsumeMonth folds the employee's approved leave requests for (month, year)
// over the prior balance. Requests are processed in ascending start-date
// order, created-at as tie-break: this canonical order is part of the
// contract, because per-request attribution depends on it when same-category
// requests compete for the same balance. Aggregate totals do not.
func ConsumeMonth(
	prior Balance,
	requests []Leave,
	categories CategoryIndex,
	month time.Month,
	year int,
	holidays calendar.HolidaySet,
) MonthConsumption {
	sorted := make([]Leave, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	out := MonthConsumption{Balance: prior}
	for _, req := range sorted {
		if req.Status != StatusApproved {
			continue
		}

		days := calendar.OverlapWorkingDays(req.StartDate, req.EndDate, month, year, holidays)
		if days == 0 {
			continue
		}

		split, next := ApplyLeave(categories.Resolve(req.LeaveType), days, out.Balance)
		out.Balance = next
		out.CasualTaken += split.CasualDaysConsumed
		out.SickTaken += split.SickDaysConsumed
		out.UnpaidDays += split.UnpaidDaysProduced
		out.PerRequest = append(out.PerRequest, RequestConsumption{
			Request: req,
			Days:    days,
			Split:   split,
		})
	}

	return out
}
