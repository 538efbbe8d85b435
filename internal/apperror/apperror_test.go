package apperror

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantKind        Kind
		wantStatus      int
		wantMessage     string
		wantOperational bool
	}{
		{
			name:            "record not found",
			err:             gorm.ErrRecordNotFound,
			wantKind:        KindNotFound,
			wantStatus:      http.StatusNotFound,
			wantMessage:     "Resource not found",
			wantOperational: true,
		},
		{
			name:            "unique violation",
			err:             &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind:        KindConflict,
			wantStatus:      http.StatusConflict,
			wantMessage:     "Duplicate value for field: users_email_key",
			wantOperational: true,
		},
		{
			name:            "unique violation without constraint name",
			err:             &pgconn.PgError{Code: "23505"},
			wantKind:        KindConflict,
			wantStatus:      http.StatusConflict,
			wantMessage:     "Duplicate value for field: unknown",
			wantOperational: true,
		},
		{
			name:            "foreign key violation",
			err:             &pgconn.PgError{Code: "23503"},
			wantKind:        KindReferential,
			wantStatus:      http.StatusBadRequest,
			wantMessage:     "Invalid reference to a related resource",
			wantOperational: true,
		},
		{
			name:            "connection failure",
			err:             &pgconn.PgError{Code: "08006"},
			wantKind:        KindStoreUnavailable,
			wantStatus:      http.StatusServiceUnavailable,
			wantMessage:     "Service temporarily unavailable",
			wantOperational: true,
		},
		{
			name:            "other database error",
			err:             &pgconn.PgError{Code: "42703"},
			wantKind:        KindStore,
			wantStatus:      http.StatusBadRequest,
			wantMessage:     "Database request error",
			wantOperational: true,
		},
		{
			name:            "invalid db handle",
			err:             gorm.ErrInvalidDB,
			wantKind:        KindStoreUnavailable,
			wantStatus:      http.StatusServiceUnavailable,
			wantMessage:     "Service temporarily unavailable",
			wantOperational: true,
		},
		{
			name:            "expired token",
			err:             jwt.ErrTokenExpired,
			wantKind:        KindUnauthorized,
			wantStatus:      http.StatusUnauthorized,
			wantMessage:     "Token expired",
			wantOperational: true,
		},
		{
			name:            "malformed token",
			err:             jwt.ErrTokenMalformed,
			wantKind:        KindUnauthorized,
			wantStatus:      http.StatusUnauthorized,
			wantMessage:     "Invalid token",
			wantOperational: true,
		},
		{
			name:            "bad signature",
			err:             jwt.ErrTokenSignatureInvalid,
			wantKind:        KindUnauthorized,
			wantStatus:      http.StatusUnauthorized,
			wantMessage:     "Invalid token",
			wantOperational: true,
		},
		{
			name:            "oversized body",
			err:             &http.MaxBytesError{Limit: 10 << 20},
			wantKind:        KindPayloadTooLarge,
			wantStatus:      http.StatusRequestEntityTooLarge,
			wantMessage:     "Request body too large",
			wantOperational: true,
		},
		{
			name:            "json syntax error",
			err:             &json.SyntaxError{Offset: 3},
			wantKind:        KindMalformed,
			wantStatus:      http.StatusBadRequest,
			wantMessage:     "Invalid JSON payload",
			wantOperational: true,
		},
		{
			name:            "json type mismatch",
			err:             &json.UnmarshalTypeError{},
			wantKind:        KindMalformed,
			wantStatus:      http.StatusBadRequest,
			wantMessage:     "Invalid JSON payload",
			wantOperational: true,
		},
		{
			name:            "truncated body",
			err:             io.ErrUnexpectedEOF,
			wantKind:        KindMalformed,
			wantStatus:      http.StatusBadRequest,
			wantMessage:     "Invalid JSON payload",
			wantOperational: true,
		},
		{
			name:            "empty body",
			err:             io.EOF,
			wantKind:        KindMalformed,
			wantStatus:      http.StatusBadRequest,
			wantMessage:     "Invalid JSON payload",
			wantOperational: true,
		},
		{
			name:            "unknown error",
			err:             errors.New("something unexpected"),
			wantKind:        KindInternal,
			wantStatus:      http.StatusInternalServerError,
			wantMessage:     "Server Error",
			wantOperational: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := Classify(tt.err)

			require.NotNil(t, classified)
			assert.Equal(t, tt.wantKind, classified.Kind)
			assert.Equal(t, tt.wantStatus, classified.Status)
			assert.Equal(t, tt.wantMessage, classified.Message)
			assert.Equal(t, tt.wantOperational, classified.Operational)
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassifyPassthrough(t *testing.T) {
	original := Validation("name is required")

	classified := Classify(original)
	assert.Same(t, original, classified)
}

func TestClassifyWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("fetch visitor"), gorm.ErrRecordNotFound)

	classified := Classify(wrapped)
	assert.Equal(t, KindNotFound, classified.Kind)
	assert.Equal(t, http.StatusNotFound, classified.Status)
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	classified := Classify(cause)

	assert.ErrorIs(t, classified, cause)
	assert.Contains(t, classified.Error(), "boom")
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantKind   Kind
		wantStatus int
	}{
		{"validation", Validation("bad payload"), KindValidation, http.StatusUnprocessableEntity},
		{"not found", NotFound("missing"), KindNotFound, http.StatusNotFound},
		{"unauthorized", Unauthorized("no token"), KindUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden("wrong role"), KindForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.True(t, tt.err.Operational)
		})
	}
}
