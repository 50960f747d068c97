package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const defaultProjectLabel = "the project"

// Project is an investable vehicle with an optional capital ceiling.
//
// TotalInvested is the canonical invested-capital counter; the store keeps its
// legacy duplicates in sync. TargetAmount is invalid for uncapped projects.
type Project struct {
	ProjectID     string              `json:"projectID"`
	Name          string              `json:"name"`
	TargetAmount  decimal.NullDecimal `json:"targetAmount"`
	TotalInvested decimal.NullDecimal `json:"totalInvested"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Version       int64               `json:"version"`
}

// HasFixedTarget reports whether the project has a finite, positive capital ceiling.
func (p Project) HasFixedTarget() bool {
	return p.TargetAmount.Valid && p.TargetAmount.Decimal.IsPositive()
}

// RemainingCapacity returns target minus invested. Only meaningful for fixed-target
// projects with a valid TotalInvested.
func (p Project) RemainingCapacity() decimal.Decimal {
	return p.TargetAmount.Decimal.Sub(p.TotalInvested.Decimal)
}

// DisplayName returns the project name or a generic label.
func (p Project) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return defaultProjectLabel
}
