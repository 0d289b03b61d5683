package reviewerrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var (
	ErrNotReviewerRole = apperror.New(
		apperror.CodeForbidden,
		"Not authorized",
		http.StatusForbidden,
	)
	ErrNotDirectReport = apperror.New(
		apperror.CodeForbidden,
		"You can only review your direct reports",
		http.StatusForbidden,
	)
	ErrNotUnderLeadership = apperror.New(
		apperror.CodeForbidden,
		"You can only review employees under your leadership",
		http.StatusForbidden,
	)
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Review not found",
		http.StatusNotFound,
	)
)
