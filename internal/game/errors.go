package game

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes action failures.
type ErrorCode string

const (
	// ErrCodeEmptySource indicates a removal from an empty queue or stack.
	ErrCodeEmptySource ErrorCode = "EMPTY_SOURCE"

	// ErrCodeFullDestination indicates a push into a full stack.
	ErrCodeFullDestination ErrorCode = "FULL_DESTINATION"

	// ErrCodeDestinationNotFull indicates a block swap while the stack is not at capacity.
	ErrCodeDestinationNotFull ErrorCode = "DESTINATION_NOT_FULL"

	// ErrCodeInsufficientSource indicates a block swap while the queue holds
	// fewer pieces than the stack capacity.
	ErrCodeInsufficientSource ErrorCode = "INSUFFICIENT_SOURCE"

	// ErrCodeInvalidSelection indicates an unrecognized menu code.
	ErrCodeInvalidSelection ErrorCode = "INVALID_SELECTION"
)

// Container names used in ActionError.Container.
const (
	ContainerQueue   = "queue"
	ContainerReserve = "reserve"
)

// ActionError reports why an action was rejected.
//
// An ActionError always means nothing changed.
type ActionError struct {
	// Code identifies the failed condition.
	Code ErrorCode

	// Action is the rejected action.
	Action Action

	// Container names the container whose state blocked the action
	// ("queue" or "reserve"). Empty for InvalidSelection.
	Container string

	// Message is a human-readable description.
	Message string

	// Details contains additional context (sizes, capacities, raw input).
	Details map[string]string
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s: %s (action=%s)", e.Code, e.Message, e.Action)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not an ActionError.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsEmptySource returns true if err is an EmptySource action error.
func IsEmptySource(err error) bool { return CodeOf(err) == ErrCodeEmptySource }

// IsFullDestination returns true if err is a FullDestination action error.
func IsFullDestination(err error) bool { return CodeOf(err) == ErrCodeFullDestination }

// IsDestinationNotFull returns true if err is a DestinationNotFull action error.
func IsDestinationNotFull(err error) bool { return CodeOf(err) == ErrCodeDestinationNotFull }

// IsInsufficientSource returns true if err is an InsufficientSource action error.
func IsInsufficientSource(err error) bool { return CodeOf(err) == ErrCodeInsufficientSource }

// IsInvalidSelection returns true if err is an InvalidSelection action error.
func IsInvalidSelection(err error) bool { return CodeOf(err) == ErrCodeInvalidSelection }

// NewEmptySourceError creates an ActionError for a removal from an empty container.
func NewEmptySourceError(action Action, container string) *ActionError {
	return &ActionError{
		Code:      ErrCodeEmptySource,
		Action:    action,
		Container: container,
		Message:   fmt.Sprintf("%s is empty", container),
	}
}

// NewFullDestinationError creates an ActionError for a push into a full stack.
func NewFullDestinationError(action Action, capacity int) *ActionError {
	return &ActionError{
		Code:      ErrCodeFullDestination,
		Action:    action,
		Container: ContainerReserve,
		Message:   fmt.Sprintf("reserve is full (%d/%d)", capacity, capacity),
		Details: map[string]string{
			"capacity": fmt.Sprintf("%d", capacity),
		},
	}
}

// NewDestinationNotFullError creates an ActionError for a block swap on a partial stack.
func NewDestinationNotFullError(size, capacity int) *ActionError {
	return &ActionError{
		Code:      ErrCodeDestinationNotFull,
		Action:    ActionSwapBlock,
		Container: ContainerReserve,
		Message:   fmt.Sprintf("reserve must be full for a block swap (%d/%d)", size, capacity),
		Details: map[string]string{
			"size":     fmt.Sprintf("%d", size),
			"capacity": fmt.Sprintf("%d", capacity),
		},
	}
}

// NewInsufficientSourceError creates an ActionError for a block swap on a short queue.
func NewInsufficientSourceError(size, required int) *ActionError {
	return &ActionError{
		Code:      ErrCodeInsufficientSource,
		Action:    ActionSwapBlock,
		Container: ContainerQueue,
		Message:   fmt.Sprintf("queue needs at least %d pieces for a block swap (has %d)", required, size),
		Details: map[string]string{
			"size":     fmt.Sprintf("%d", size),
			"required": fmt.Sprintf("%d", required),
		},
	}
}

// NewInvalidSelectionError creates an ActionError for an unrecognized menu input.
func NewInvalidSelectionError(input string) *ActionError {
	return &ActionError{
		Code:    ErrCodeInvalidSelection,
		Message: fmt.Sprintf("invalid selection %q", input),
		Details: map[string]string{
			"input": input,
		},
	}
}
