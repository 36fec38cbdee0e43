package moyskladdomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

const (
	tobaccoPrefix  = "Сигаретная продукция/Сигаретная продукция (табаконисты)"
	bonusAttribute = "Целевой продукт"
)

func TestClassifier_IsExcludedCategory(t *testing.T) {
	classifier := NewClassifier(tobaccoPrefix, bonusAttribute)

	tests := []struct {
		name    string
		product *Product
		want    bool
	}{
		{
			name:    "Subcategoria de tabaco",
			product: &Product{PathName: tobaccoPrefix + "/Marlboro"},
			want:    true,
		},
		{
			name:    "Categoria exata",
			product: &Product{PathName: tobaccoPrefix},
			want:    true,
		},
		{
			name:    "Categoria irmã não é excluída",
			product: &Product{PathName: "Сигаретная продукция/Электронные"},
			want:    false,
		},
		{
			name:    "Sem categoria",
			product: &Product{},
			want:    false,
		},
		{
			name:    "Produto nulo",
			product: nil,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.IsExcludedCategory(tt.product))
		})
	}

	assert.False(t, NewClassifier("", bonusAttribute).IsExcludedCategory(&Product{PathName: "qualquer"}))
}

func TestClassifier_IsBonusEligible(t *testing.T) {
	classifier := NewClassifier(tobaccoPrefix, bonusAttribute)

	attribute := func(name, value string) Attribute {
		return Attribute{Name: name, Type: "boolean", Value: jsoniter.RawMessage(value)}
	}

	tests := []struct {
		name    string
		product *Product
		want    bool
	}{
		{
			name:    "Atributo true",
			product: &Product{Attributes: []Attribute{attribute(bonusAttribute, "true")}},
			want:    true,
		},
		{
			name:    "Atributo false",
			product: &Product{Attributes: []Attribute{attribute(bonusAttribute, "false")}},
			want:    false,
		},
		{
			name:    "Texto \"true\" não conta",
			product: &Product{Attributes: []Attribute{attribute(bonusAttribute, `"true"`)}},
			want:    false,
		},
		{
			name:    "Outro atributo true",
			product: &Product{Attributes: []Attribute{attribute("Новинка", "true")}},
			want:    false,
		},
		{
			name:    "Sem atributos",
			product: &Product{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.IsBonusEligible(tt.product))
		})
	}
}

func TestErrorResponse_Message(t *testing.T) {
	var resp ErrorResponse
	err := json.Unmarshal([]byte(`{"errors":[{"error":"Ошибка 1","code":1001},{"error":"Ошибка 2","code":1002,"moreInfo":"https://dev.moysklad.ru"}]}`), &resp)
	assert.NoError(t, err)

	assert.Equal(t, "Ошибка 1, Ошибка 2", resp.Message())
	assert.Equal(t, 1001, resp.Code())
}
