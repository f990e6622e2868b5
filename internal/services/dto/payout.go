package dto

import (
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
)

type EarningsResponse struct {
	Summary repositories.EarningsSummary `json:"summary"`
	Lines   []repositories.EarningsLine  `json:"lines"`
	Paging  models.Pagination            `json:"pagination"`
}
