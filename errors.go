package cali

import "github.com/pkg/errors"

var ErrCorruptData = errors.New("data file is corrupt")
var ErrInvalidAmount = errors.New("invalid amount")
var ErrUnknownMetric = errors.New("unknown metric")
var ErrInvalidDate = errors.New("invalid date")
var ErrStorageFailed = errors.New("storage error")
