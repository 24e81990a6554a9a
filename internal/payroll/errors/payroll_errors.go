package payrollerrors

import (
	"net/http"

	"go-hrpay/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four-digit year",
		http.StatusBadRequest,
	)
	ErrInvalidAttendancePolicy = apperror.New(
		apperror.CodeInvalidState,
		"attendance policy configuration is invalid",
		http.StatusInternalServerError,
	)
	ErrAlreadyGenerated = apperror.New(
		apperror.CodeConflict,
		"payroll has already been generated for this period",
		http.StatusConflict,
	)
	ErrNoActiveEmployees = apperror.New(
		apperror.CodeInvalidState,
		"no active employees to generate payroll for",
		http.StatusUnprocessableEntity,
	)
	ErrNoWorkingDays = apperror.New(
		apperror.CodeInvalidState,
		"month has no working days, daily rate is undefined",
		http.StatusUnprocessableEntity,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"payroll is already approved",
		http.StatusBadRequest,
	)
)
