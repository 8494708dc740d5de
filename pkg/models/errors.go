package models

import (
	"errors"
)

var (
	ErrUnknownInterval  = errors.New("unknown recurrence interval")
	ErrUnknownFrequency = errors.New("unknown income frequency")
)
