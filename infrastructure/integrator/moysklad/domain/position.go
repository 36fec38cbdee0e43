package moyskladdomain

import (
	"math"
)

// Position é um item de uma venda de varejo
type Position struct {
	Meta       Meta       `json:"meta"`
	ID         string     `json:"id"`
	Quantity   float64    `json:"quantity"`
	Price      Amount     `json:"price"`
	Sum        Amount     `json:"sum,omitempty"`
	Assortment Assortment `json:"assortment"`
}

// LineTotal retorna o total da linha; quando a API não envia sum, usa price × quantity
func (p Position) LineTotal() int64 {
	if p.Sum != 0 {
		return p.Sum.Int64()
	}

	return int64(math.Round(float64(p.Price) * p.Quantity))
}

type AssortmentKind int

const (
	AssortmentUnknown AssortmentKind = iota
	AssortmentInline
	AssortmentReference
)

// Assortment é a referência de catálogo de uma posição: ou o objeto completo
// (quando a listagem foi feita com expand=assortment) ou apenas o meta.
type Assortment struct {
	Kind     AssortmentKind
	Href     string
	MetaType string
	Product  *Product
}

type rawAssortment struct {
	Meta *Meta   `json:"meta"`
	ID   *string `json:"id"`
	Name *string `json:"name"`
	Type string  `json:"type"`
}

func (a *Assortment) UnmarshalJSON(data []byte) error {
	*a = Assortment{}

	if string(data) == "null" {
		return nil
	}

	var raw rawAssortment
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Meta != nil {
		a.Href = raw.Meta.Href
		a.MetaType = raw.Meta.Type
	}

	switch {
	case raw.ID != nil && raw.Name != nil && raw.Type != TypeAttributeMetadata:
		var product Product
		if err := json.Unmarshal(data, &product); err != nil {
			return err
		}
		a.Kind = AssortmentInline
		a.Product = &product
	case raw.Meta != nil:
		a.Kind = AssortmentReference
	}

	return nil
}

func (a Assortment) MarshalJSON() ([]byte, error) {
	if a.Kind == AssortmentInline && a.Product != nil {
		return json.Marshal(a.Product)
	}

	if a.Kind == AssortmentReference {
		return json.Marshal(struct {
			Meta Meta `json:"meta"`
		}{Meta: Meta{Href: a.Href, Type: a.MetaType}})
	}

	return []byte("null"), nil
}

// IsProduct indica se a posição referencia um produto do catálogo.
// Serviços ficam de fora da exclusão de categoria e do bônus.
func (a Assortment) IsProduct() bool {
	switch a.Kind {
	case AssortmentInline:
		return a.MetaType != TypeService
	case AssortmentReference:
		return a.MetaType == TypeProduct
	}

	return false
}
