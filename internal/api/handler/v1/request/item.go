package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateItemRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
	)
}

type UpdatePriceRequest struct {
	Price float64 `json:"price"`
}

func (req *UpdatePriceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
	)
}
