package models

// AccountBalances holds the dual-currency account balances. Exactly one row
// is expected to exist; it is created on first read and mutated by the
// exchange and manual-edit workflows.
type AccountBalances struct {
	Base
	Pyg float64 `gorm:"not null;default:0" json:"pyg"`
	Brl float64 `gorm:"not null;default:0" json:"brl"`
}
