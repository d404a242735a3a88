package history

import (
	"lotto_backend/internal/api/dto/wager"
	"time"

	"github.com/shopspring/decimal"
)

type RecordResponse struct {
	ID        string          `json:"id"`
	DrawDate  string          `json:"draw_date"`
	Kind      string          `json:"kind"`
	Numbers   []int           `json:"numbers"`
	Matched   []int           `json:"matched"`
	Cost      int64           `json:"cost"`
	Prize     decimal.Decimal `json:"prize"`
	Profit    decimal.Decimal `json:"profit"`
	CreatedAt time.Time       `json:"created_at"`
}

type HistoryResponse struct {
	Records []RecordResponse     `json:"records"`
	Totals  wager.TotalsResponse `json:"totals"`
}
