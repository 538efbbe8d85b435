package validate

import (
	"strings"

	"github.com/santoso/visitor-gate/internal/apperror"
	"github.com/xeipuuv/gojsonschema"
)

const userSchema = `{
	"type": "object",
	"required": ["name", "email", "password", "role"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"email": {"type": "string", "format": "email"},
		"password": {"type": "string", "minLength": 8},
		"role": {"type": "string", "enum": ["SUPERUSER", "ADMIN", "RECEPTIONIST"]}
	}
}`

const userUpdateSchema = `{
	"type": "object",
	"required": ["name", "email", "role"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"email": {"type": "string", "format": "email"},
		"password": {"type": "string", "minLength": 8},
		"role": {"type": "string", "enum": ["SUPERUSER", "ADMIN", "RECEPTIONIST"]}
	}
}`

const deviceSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"deviceKey": {"type": "string"},
		"groupId": {"type": "string"},
		"location": {"type": "string"}
	}
}`

const visitorSchema = `{
	"type": "object",
	"required": ["name", "idcardNum"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"idcardNum": {"type": "string", "minLength": 1},
		"imgBase64": {"type": "string"},
		"type": {"type": "integer"},
		"passtime": {"type": "string"}
	}
}`

var (
	userCreateLoader = gojsonschema.NewStringLoader(userSchema)
	userUpdateLoader = gojsonschema.NewStringLoader(userUpdateSchema)
	deviceLoader     = gojsonschema.NewStringLoader(deviceSchema)
	visitorLoader    = gojsonschema.NewStringLoader(visitorSchema)
)

// UserCreate validates a user create payload.
func UserCreate(body []byte) error {
	return validateAgainst(userCreateLoader, body)
}

// UserUpdate validates a user update payload (password optional).
func UserUpdate(body []byte) error {
	return validateAgainst(userUpdateLoader, body)
}

// Device validates a device create/update payload.
func Device(body []byte) error {
	return validateAgainst(deviceLoader, body)
}

// Visitor validates a visitor create/update payload.
func Visitor(body []byte) error {
	return validateAgainst(visitorLoader, body)
}

func validateAgainst(schema gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Undecodable bodies are malformed requests, not validation failures.
		return err
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return apperror.Validation(strings.Join(messages, "; "))
}
