package models

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidTurn       Code = "INVALID_TURN"
	CodeInvalidAction     Code = "INVALID_ACTION"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
	CodeInvalidState      Code = "INVALID_STATE"
	CodeInternal          Code = "INTERNAL"
)

// GameError is a rejection of a player action. Nothing is persisted when an
// action returns one.
type GameError struct {
	Code    Code
	Message string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any GameError carrying the same code.
func (e *GameError) Is(target error) bool {
	t, ok := target.(*GameError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrNotFound          = &GameError{Code: CodeNotFound, Message: "not found"}
	ErrInvalidTurn       = &GameError{Code: CodeInvalidTurn, Message: "not your turn"}
	ErrInvalidAction     = &GameError{Code: CodeInvalidAction, Message: "invalid action"}
	ErrInsufficientFunds = &GameError{Code: CodeInsufficientFunds, Message: "insufficient funds"}
	ErrInvalidState      = &GameError{Code: CodeInvalidState, Message: "invalid game state"}
)

func NotFound(format string, args ...interface{}) error {
	return &GameError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidTurn(format string, args ...interface{}) error {
	return &GameError{Code: CodeInvalidTurn, Message: fmt.Sprintf(format, args...)}
}

func InvalidAction(format string, args ...interface{}) error {
	return &GameError{Code: CodeInvalidAction, Message: fmt.Sprintf(format, args...)}
}

func InsufficientFunds(format string, args ...interface{}) error {
	return &GameError{Code: CodeInsufficientFunds, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) error {
	return &GameError{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Rejection is what the acting client receives when its action fails.
type Rejection struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func AsRejection(err error) Rejection {
	var ge *GameError
	if errors.As(err, &ge) {
		return Rejection{Code: ge.Code, Message: ge.Message}
	}
	return Rejection{Code: CodeInternal, Message: "internal error"}
}
