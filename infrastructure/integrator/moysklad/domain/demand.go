package moyskladdomain

// Demand é uma venda de varejo (retaildemand) já concluída
type Demand struct {
	Meta       Meta   `json:"meta"`
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Moment     string `json:"moment,omitempty"`
	Sum        Amount `json:"sum"`
	Applicable *bool  `json:"applicable,omitempty"`
}

// IsApplicable só é falso quando a venda foi explicitamente anulada (applicable=false)
func (d Demand) IsApplicable() bool {
	return d.Applicable == nil || *d.Applicable
}

type RetailStore struct {
	Meta    Meta   `json:"meta"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
