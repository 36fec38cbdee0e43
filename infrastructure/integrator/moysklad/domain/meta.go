package moyskladdomain

import (
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	TypeProduct           = "product"
	TypeService           = "service"
	TypeVariant           = "variant"
	TypeAttributeMetadata = "attributemetadata"
)

// Meta é o bloco de metadados que a API do MoySklad anexa a toda entidade
type Meta struct {
	Href      string `json:"href,omitempty"`
	Type      string `json:"type,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
}

// ListResponse é o envelope padrão das listagens (rows)
type ListResponse[T any] struct {
	Meta Meta `json:"meta"`
	Rows []T  `json:"rows"`
}

// Amount representa um valor monetário em unidades menores (copeques).
// A API envia esses valores como números JSON, às vezes com parte decimal (12300.0).
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = 0
		return nil
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*a = Amount(math.Round(value))
	return nil
}

func (a Amount) Int64() int64 {
	return int64(a)
}
