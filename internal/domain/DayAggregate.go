package domain

import (
	"github.com/shopspring/decimal"
)

const minorUnitsPerMajor = 100

// DayAggregate é o resultado de um dia de vendas de uma loja. Valores em copeques.
type DayAggregate struct {
	Date               string `json:"date"`
	NetSalesTotal      int64  `json:"netSalesTotal"`
	BonusEligibleUnits int64  `json:"bonusEligibleUnits"`
	ValidDemands       int    `json:"validDemands"`
}

// DateResult guarda o agregado de uma data ou a mensagem de erro daquela data
type DateResult struct {
	Aggregate *DayAggregate `json:"aggregate,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func (r DateResult) Failed() bool {
	return r.Aggregate == nil
}

// MinorToMajor converte copeques em rublos
func MinorToMajor(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(minorUnitsPerMajor))
}
