package models

import "errors"

var (
	ErrEmptyExport       = errors.New("export contains no conversations")
	ErrConversationIndex = errors.New("conversation index out of range")
	ErrNoMapping         = errors.New("conversation has no mapping")
	ErrPartitionMismatch = errors.New("re-merged output does not reproduce the partition")
	ErrAmbiguousDate     = errors.New("more than one file for a date")
)
