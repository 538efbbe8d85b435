package apperror

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind tags a classified failure cause.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindReferential      Kind = "referential_integrity"
	KindStore            Kind = "store"
	KindStoreUnavailable Kind = "store_unavailable"
	KindValidation       Kind = "validation"
	KindMalformed        Kind = "malformed_request"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindPayloadTooLarge  Kind = "payload_too_large"
	KindInternal         Kind = "internal"
)

// Error is the single client-facing failure shape. Operational errors are
// anticipated failure modes with a safe message; non-operational ones are
// defects and must never leak internals to production clients.
type Error struct {
	Kind        Kind
	Status      int
	Message     string
	Operational bool
	cause       error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an operational error with an explicit status and message.
func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Operational: true}
}

// Validation builds a 422 payload-validation error.
func Validation(message string) *Error {
	return New(KindValidation, http.StatusUnprocessableEntity, message)
}

// NotFound builds a 404 error.
func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

// Unauthorized builds a 401 error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, http.StatusUnauthorized, message)
}

// Forbidden builds a 403 error.
func Forbidden(message string) *Error {
	return New(KindForbidden, http.StatusForbidden, message)
}

// Postgres error codes surfaced through the gorm driver.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Classify maps any failure onto the error taxonomy. It never panics: an
// internal failure during classification degrades to the generic 500.
func Classify(err error) (appErr *Error) {
	defer func() {
		if r := recover(); r != nil {
			appErr = internalError(err)
		}
	}()

	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: "Resource not found", Operational: true, cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			field := pgErr.ConstraintName
			if field == "" {
				field = "unknown"
			}
			return &Error{Kind: KindConflict, Status: http.StatusConflict, Message: "Duplicate value for field: " + field, Operational: true, cause: err}
		case pgErr.Code == pgForeignKeyViolation:
			return &Error{Kind: KindReferential, Status: http.StatusBadRequest, Message: "Invalid reference to a related resource", Operational: true, cause: err}
		case strings.HasPrefix(pgErr.Code, "08"):
			return &Error{Kind: KindStoreUnavailable, Status: http.StatusServiceUnavailable, Message: "Service temporarily unavailable", Operational: true, cause: err}
		default:
			return &Error{Kind: KindStore, Status: http.StatusBadRequest, Message: "Database request error", Operational: true, cause: err}
		}
	}

	if errors.Is(err, gorm.ErrInvalidDB) {
		return &Error{Kind: KindStoreUnavailable, Status: http.StatusServiceUnavailable, Message: "Service temporarily unavailable", Operational: true, cause: err}
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: "Token expired", Operational: true, cause: err}
	}
	if errors.Is(err, jwt.ErrTokenMalformed) || errors.Is(err, jwt.ErrTokenSignatureInvalid) ||
		errors.Is(err, jwt.ErrTokenUnverifiable) || errors.Is(err, jwt.ErrTokenNotValidYet) ||
		errors.Is(err, jwt.ErrTokenInvalidClaims) {
		return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: "Invalid token", Operational: true, cause: err}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &Error{Kind: KindPayloadTooLarge, Status: http.StatusRequestEntityTooLarge, Message: "Request body too large", Operational: true, cause: err}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &Error{Kind: KindMalformed, Status: http.StatusBadRequest, Message: "Invalid JSON payload", Operational: true, cause: err}
	}

	return internalError(err)
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Server Error", Operational: false, cause: err}
}
