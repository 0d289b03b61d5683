package cycleerrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var (
	ErrNoActiveCycle = apperror.New(
		apperror.CodeInvalidState,
		"No active appraisal cycle",
		http.StatusBadRequest,
	)
	ErrCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appraisal cycle not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"startDate must be before or equal endDate",
		http.StatusBadRequest,
	)
	ErrInvalidCycleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid appraisal cycle id",
		http.StatusBadRequest,
	)
)
