package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type Item struct {
	Name     string   `json:"name"`
	Quantity Quantity `json:"quantity"`
}

// Quantity is an integer count, or NaN when the submitted text held no number.
// The zero value is a count of 0.
type Quantity struct {
	n   int64
	nan bool
}

func Count(n int64) Quantity {
	return Quantity{n: n}
}

func NaN() Quantity {
	return Quantity{nan: true}
}

func (q Quantity) IsNaN() bool {
	return q.nan
}

// Int64 reports the count and whether the quantity holds one.
func (q Quantity) Int64() (int64, bool) {
	if q.nan {
		return 0, false
	}
	return q.n, true
}

func (q Quantity) String() string {
	if q.nan {
		return "NaN"
	}
	return strconv.FormatInt(q.n, 10)
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.nan {
		return []byte(`"NaN"`), nil
	}
	return []byte(strconv.FormatInt(q.n, 10)), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte(`"NaN"`)) || bytes.Equal(data, []byte("null")) {
		*q = NaN()
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Count(n)
	return nil
}

// ChangeEvent is broadcast after a successful mutation of a collection.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Op         string    `json:"op"`
	Name       string    `json:"name"`
	At         time.Time `json:"at"`
}
