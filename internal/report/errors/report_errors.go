package reporterrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var ErrNotAuthorized = apperror.New(
	apperror.CodeForbidden,
	"Not authorized",
	http.StatusForbidden,
)
