package mapping

import (
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	"github.com/SscSPs/investment_admin_core/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ToDomainProject normalises a project row into the canonical schema:
//   - Name is the first non-empty of name, title, project_name.
//   - TargetAmount is the first non-NULL of target_amount, target, goal_amount.
//   - TotalInvested is whichever of total_invested / total_investment is set.
//     Both NULL means nothing was invested yet. Two set values that disagree, or a
//     non-finite value, make the counter invalid.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:     m.ProjectID,
		Name:          firstNonEmpty(m.Name, m.Title, m.ProjectName),
		TargetAmount:  ToNullDecimal(firstPresent(m.TargetAmount, m.Target, m.GoalAmount)),
		TotalInvested: normaliseTotalInvested(m.TotalInvested, m.TotalInvestment),
		UpdatedAt:     m.UpdatedAt,
		Version:       m.Version,
	}
}

func normaliseTotalInvested(primary, legacy pgtype.Numeric) decimal.NullDecimal {
	switch {
	case !primary.Valid && !legacy.Valid:
		return decimal.NewNullDecimal(decimal.Zero)
	case primary.Valid && !legacy.Valid:
		return ToNullDecimal(primary)
	case !primary.Valid && legacy.Valid:
		return ToNullDecimal(legacy)
	}

	a, b := ToNullDecimal(primary), ToNullDecimal(legacy)
	if !a.Valid || !b.Valid || !a.Decimal.Equal(b.Decimal) {
		return decimal.NullDecimal{}
	}
	return a
}
