// Package errors provides standardized error handling for the site engine.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Routing / registry errors
	ErrCodeUnknownLocation ErrorCode = "UNKNOWN_LOCATION"
	ErrCodeUnknownIntent   ErrorCode = "UNKNOWN_INTENT"
	ErrCodeUnknownIndustry ErrorCode = "UNKNOWN_INDUSTRY"

	// Registry override errors
	ErrCodeOverrideReadFailed   ErrorCode = "OVERRIDE_READ_FAILED"
	ErrCodeOverrideInvalid      ErrorCode = "OVERRIDE_INVALID"
	ErrCodeOverrideSchemaFailed ErrorCode = "OVERRIDE_SCHEMA_FAILED"

	// Chat errors
	ErrCodeChatEmptyMessage ErrorCode = "CHAT_EMPTY_MESSAGE"
	ErrCodeChatBusy         ErrorCode = "CHAT_BUSY"
	ErrCodeChatLLMTimeout   ErrorCode = "CHAT_LLM_TIMEOUT"
	ErrCodeChatLLMFailed    ErrorCode = "CHAT_LLM_FAILED"
	ErrCodeChatStoreFailed  ErrorCode = "CHAT_STORE_FAILED"

	// Lead notification errors
	ErrCodeLeadInvalid    ErrorCode = "LEAD_INVALID"
	ErrCodeLeadSendFailed ErrorCode = "LEAD_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewUnknownLocationError marks a city slug missing from the location registry.
func NewUnknownLocationError(slug string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownLocation,
		Message:   "Location not present in registry",
		Details:   fmt.Sprintf("slug: %s", slug),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownIntentError marks an intent slug missing from the intent registry.
func NewUnknownIntentError(slug string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownIntent,
		Message:   "Intent not present in registry",
		Details:   fmt.Sprintf("slug: %s", slug),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownIndustryError marks a business-type slug missing from the industry registry.
func NewUnknownIndustryError(slug string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownIndustry,
		Message:   "Industry not present in registry",
		Details:   fmt.Sprintf("slug: %s", slug),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOverrideInvalidError marks a registry override file that failed schema validation.
// The built-in tables stay in force when this is returned.
func NewOverrideInvalidError(file string, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOverrideInvalid,
		Message:   "Registry override file rejected",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"file": file},
		Timestamp: time.Now().UTC(),
	}
}

// NewChatLLMFailedError creates a retryable upstream chat error.
func NewChatLLMFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatLLMFailed,
		Message:   "Chat completion request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChatLLMTimeoutError creates a retryable chat timeout error.
func NewChatLLMTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatLLMTimeout,
		Message:   "Chat completion request timed out",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChatStoreFailedError creates a retryable conversation store error.
func NewChatStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChatStoreFailed,
		Message:   "Conversation store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLeadSendFailedError creates a retryable lead alert delivery error.
func NewLeadSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLeadSendFailed,
		Message:   "Lead alert delivery failed",
		Details:   err.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"channel": channel},
		Timestamp: time.Now().UTC(),
	}
}
