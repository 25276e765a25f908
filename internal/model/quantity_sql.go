package model

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
)

// Value stores NaN as NULL.
func (q Quantity) Value() (driver.Value, error) {
	if q.nan {
		return nil, nil
	}
	return q.n, nil
}

func (q *Quantity) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*q = NaN()
	case int64:
		*q = Count(v)
	case float64:
		if math.IsNaN(v) {
			*q = NaN()
			return nil
		}
		*q = Count(int64(v))
	case []byte:
		return q.scanText(string(v))
	case string:
		return q.scanText(v)
	default:
		return fmt.Errorf("quantity: unsupported scan type %T", src)
	}
	return nil
}

func (q *Quantity) scanText(s string) error {
	if s == "NaN" {
		*q = NaN()
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Count(n)
	return nil
}
