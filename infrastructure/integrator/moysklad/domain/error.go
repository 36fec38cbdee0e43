package moyskladdomain

import (
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do MoySklad
type ErrorResponse struct {
	Errors []ErrorDetails `json:"errors"`
}

// ErrorDetails contém os detalhes de um erro retornado pela API
type ErrorDetails struct {
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	Code      int    `json:"code,omitempty"`
	Parameter string `json:"parameter,omitempty"`
	MoreInfo  string `json:"moreInfo,omitempty"`
}

// Message junta as mensagens da lista de erros com ", "
func (e *ErrorResponse) Message() string {
	messages := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		switch {
		case detail.Error != "":
			messages = append(messages, detail.Error)
		case detail.Message != "":
			messages = append(messages, detail.Message)
		}
	}

	return strings.Join(messages, ", ")
}

// Code retorna o código do primeiro erro da lista, ou 0
func (e *ErrorResponse) Code() int {
	for _, detail := range e.Errors {
		if detail.Code != 0 {
			return detail.Code
		}
	}

	return 0
}
