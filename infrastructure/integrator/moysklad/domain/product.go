package moyskladdomain

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type Product struct {
	Meta       Meta        `json:"meta"`
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Code       string      `json:"code,omitempty"`
	Article    string      `json:"article,omitempty"`
	PathName   string      `json:"pathName,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Attribute é um campo adicional do produto. O valor pode ser booleano, texto ou número.
type Attribute struct {
	ID    string              `json:"id,omitempty"`
	Name  string              `json:"name"`
	Type  string              `json:"type,omitempty"`
	Value jsoniter.RawMessage `json:"value,omitempty"`
}

// IsTrue só aceita o booleano JSON true; "true" em texto não conta
func (a Attribute) IsTrue() bool {
	return bytes.Equal(bytes.TrimSpace(a.Value), []byte("true"))
}

// Classifier aplica as regras de negócio sobre produtos já resolvidos
type Classifier struct {
	ExcludedCategoryPrefix string
	BonusAttributeName     string
}

func NewClassifier(excludedCategoryPrefix, bonusAttributeName string) Classifier {
	return Classifier{
		ExcludedCategoryPrefix: excludedCategoryPrefix,
		BonusAttributeName:     bonusAttributeName,
	}
}

// IsExcludedCategory retorna true quando o caminho de categoria começa com o prefixo excluído
func (c Classifier) IsExcludedCategory(product *Product) bool {
	if product == nil || c.ExcludedCategoryPrefix == "" {
		return false
	}

	return strings.HasPrefix(product.PathName, c.ExcludedCategoryPrefix)
}

// IsBonusEligible retorna true quando o produto tem o atributo de bônus marcado como true
func (c Classifier) IsBonusEligible(product *Product) bool {
	if product == nil || c.BonusAttributeName == "" {
		return false
	}

	for _, attribute := range product.Attributes {
		if attribute.Name == c.BonusAttributeName && attribute.IsTrue() {
			return true
		}
	}

	return false
}
