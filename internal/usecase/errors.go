package usecase

import "errors"

// DomainError: o backend ou a validação recusou o pedido (validação, not-found).
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError: backend fora do ar, resposta malformada, falha de infra.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// ErrorCode extrai o Code de um DomainError/TechnicalError, ou "" se não houver.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	var te *TechnicalError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeLeadNotFound       = "LEAD_NOT_FOUND"
	CodeBackendRejected    = "BACKEND_REJECTED"
	CodeBackendUnreachable = "BACKEND_UNREACHABLE"
	CodeBackendError       = "BACKEND_ERROR"
	CodeMalformedResponse  = "MALFORMED_RESPONSE"
	CodeDraftNotReady      = "DRAFT_NOT_READY"
	CodeInvalidStatus      = "INVALID_STATUS"
)
