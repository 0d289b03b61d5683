package employeeerrors

import (
	"net/http"

	"github.com/sahil00000001/Employee-Appraisal-System/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrSelfReference = apperror.New(
		apperror.CodeInvalidInput,
		"An employee cannot be their own manager or lead",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced manager does not exist",
		http.StatusBadRequest,
	)
	ErrLeadNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced lead does not exist",
		http.StatusBadRequest,
	)
	ErrNotLinkedToUser = apperror.New(
		apperror.CodeNotFound,
		"No employee record linked to this account",
		http.StatusNotFound,
	)
)
