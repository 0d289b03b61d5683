package feedbackerrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Feedback request not found",
		http.StatusNotFound,
	)
	ErrNotAuthorizedReviewer = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to submit this feedback",
		http.StatusForbidden,
	)
	ErrWrongCycle = apperror.New(
		apperror.CodeInvalidState,
		"This feedback request is not for the current appraisal cycle",
		http.StatusBadRequest,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"Feedback has already been submitted",
		http.StatusBadRequest,
	)
	ErrTargetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Target employee not found",
		http.StatusNotFound,
	)
	ErrNoReviewers = apperror.New(
		apperror.CodeInvalidInput,
		"At least one reviewer must be selected",
		http.StatusBadRequest,
	)
)
