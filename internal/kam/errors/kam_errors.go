package kamerrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var ErrEmptyForm = apperror.New(
	apperror.CodeInvalidInput,
	"Please fill in at least one field before saving",
	http.StatusBadRequest,
)
