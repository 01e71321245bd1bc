package errors

import (
	"errors"
	"fmt"
	"math"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this building"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationCode classifies business-rule violations
type ValidationCode string

const (
	ValidationInvalidInput      ValidationCode = "invalid_input"
	ValidationInvalidID         ValidationCode = "invalid_id"
	ValidationInvalidPercentage ValidationCode = "invalid_percentage"
	ValidationInvalidDateRange  ValidationCode = "invalid_date_range"
	ValidationExceedsCapacity   ValidationCode = "exceeds_capacity"
	ValidationNoFields          ValidationCode = "no_fields"
)

// ValidationError represents a validation error.
// Details carries the offending values so callers can build an actionable message.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is matches on Code when the target carries one
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// AuthReason explains why a bearer token was rejected
type AuthReason string

const (
	AuthMalformed   AuthReason = "malformed"
	AuthExpired     AuthReason = "expired"
	AuthNotYetValid AuthReason = "not_yet_valid"
	AuthInactive    AuthReason = "inactive"
)

// AuthError represents a rejected token
type AuthError struct {
	Reason AuthReason
	cause  error
}

func (e *AuthError) Error() string {
	switch e.Reason {
	case AuthExpired:
		return "token expired"
	case AuthNotYetValid:
		return "token not active yet"
	case AuthInactive:
		return "identity not found or inactive"
	default:
		return "invalid token"
	}
}

// Unwrap returns the underlying parse error, if any
func (e *AuthError) Unwrap() error {
	return e.cause
}

// Is matches on Reason when the target carries one
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// StoreUnavailableError is a transient infrastructure failure; callers may retry.
// The message never includes the driver error so schema details stay internal.
type StoreUnavailableError struct {
	Op    string
	cause error
}

func (e *StoreUnavailableError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("store unavailable during %s", e.Op)
	}
	return "store unavailable"
}

// Unwrap exposes the driver error for logging
func (e *StoreUnavailableError) Unwrap() error {
	return e.cause
}

// Entity Not Found Errors
var (
	ErrIdentityNotFound  = &NotFoundError{Entity: "identity"}
	ErrOwnerNotFound     = &NotFoundError{Entity: "owner"}
	ErrSyndicNotFound    = &NotFoundError{Entity: "syndic"}
	ErrBuildingNotFound  = &NotFoundError{Entity: "building"}
	ErrUnitNotFound      = &NotFoundError{Entity: "unit"}
	ErrOwnershipNotFound = &NotFoundError{Entity: "ownership"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrUnitExists = &AlreadyExistsError{Entity: "unit", Context: "with this number in the building"}
)

// Validation Errors
var (
	ErrNoFieldsToUpdate  = &ValidationError{Code: ValidationNoFields, Message: "no fields to update"}
	ErrInvalidPercentage = &ValidationError{Code: ValidationInvalidPercentage, Field: "ownership_percentage", Message: "must be greater than 0 and at most 100"}
	ErrExceedsCapacity   = &ValidationError{Code: ValidationExceedsCapacity}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization header is required"}
	ErrTokenMalformed     = &AuthError{Reason: AuthMalformed}
	ErrTokenExpired       = &AuthError{Reason: AuthExpired}
	ErrTokenNotYetValid   = &AuthError{Reason: AuthNotYetValid}
	ErrIdentityInactive   = &AuthError{Reason: AuthInactive}
	ErrForbiddenPartition = &AuthorizationError{Message: "user type not allowed for this resource"}
)

// Configuration Errors
var (
	ErrSigningSecretMissing = &ConfigurationError{Message: "JWT_SECRET is not configured; refusing to issue or verify tokens"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsStoreUnavailable checks if an error is a StoreUnavailableError
func IsStoreUnavailable(err error) bool {
	var storeErr *StoreUnavailableError
	return errors.As(err, &storeErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError for malformed input
func NewValidationError(field, message string) error {
	return &ValidationError{Code: ValidationInvalidInput, Field: field, Message: message}
}

// NewCapacityError reports that a unit cannot take the requested share
func NewCapacityError(currentTotal, requested float64) error {
	return &ValidationError{
		Code:    ValidationExceedsCapacity,
		Field:   "ownership_percentage",
		Message: fmt.Sprintf("total ownership percentage cannot exceed 100%%, current total: %g%%, requested: %g%%", currentTotal, requested),
		Details: map[string]interface{}{
			"current_total": currentTotal,
			"requested":     requested,
			"available":     math.Round((100-currentTotal)*100) / 100,
		},
	}
}

// NewAuthError creates an AuthError with an underlying cause
func NewAuthError(reason AuthReason, cause error) error {
	return &AuthError{Reason: reason, cause: cause}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStoreUnavailableError wraps a transient store failure
func NewStoreUnavailableError(op string, cause error) error {
	return &StoreUnavailableError{Op: op, cause: cause}
}
