package cali

import (
	"github.com/pkg/errors"
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts user input into an amount accepted by AddMetric.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%q is not a number", s)
	}

	if err := validateAmount(v); err != nil {
		return 0, err
	}

	return v, nil
}

func validateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidAmount, "%v is not a finite number", v)
	}

	if v < 0 {
		return errors.Wrapf(ErrInvalidAmount, "%v is negative", v)
	}

	return nil
}
