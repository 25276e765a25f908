package dto

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation"
	"pantry/internal/domain"
	"pantry/internal/model"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ListItemsResponse struct {
	Items []model.Item `json:"items"`
}

// UpsertItemRequest carries the quantity as the text the user typed; it is
// coerced, not validated.
type UpsertItemRequest struct {
	Quantity QuantityText `json:"quantity"`
}

type PublishCommandRequest struct {
	Op       string       `json:"op"`
	Name     string       `json:"name"`
	Quantity QuantityText `json:"quantity"`
}

func (req *PublishCommandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Op, validation.Required, validation.In(domain.OpUpsert, domain.OpRemove)),
		validation.Field(&req.Name, validation.Required),
	)
}

// QuantityText accepts a JSON string or number and keeps its text.
type QuantityText string

func (q *QuantityText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = QuantityText(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = QuantityText(n.String())
	return nil
}
