package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Project mirrors a row of the projects table, including the legacy duplicate
// columns older console versions wrote.
type Project struct {
	ProjectID string
	// name, title and project_name have all been used as the display name.
	Name        *string
	Title       *string
	ProjectName *string
	// target_amount, target and goal_amount have all been used as the ceiling.
	TargetAmount pgtype.Numeric
	Target       pgtype.Numeric
	GoalAmount   pgtype.Numeric
	// total_invested and total_investment are incremented together.
	TotalInvested   pgtype.Numeric
	TotalInvestment pgtype.Numeric
	UpdatedAt       time.Time
	Version         int64
}
