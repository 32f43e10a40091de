package service

import "errors"

var (
	ErrUnknownActionType = errors.New("unknown action type")
	ErrEmptyPayload      = errors.New("empty action payload")
	ErrEmptyPhoto        = errors.New("empty photo blob")
	ErrActionNotFound    = errors.New("action not found")

	ErrNoSession = errors.New("no operator session on this device")
	ErrWrongPIN  = errors.New("wrong pin")
)

// validationPrefix tags a recorded failure as a remote validation
// rejection. The census query matches on it, so the prefix is part of
// the storage format, not just a display hint.
const validationPrefix = "validation: "
