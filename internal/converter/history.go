package converter

import (
	dto "lotto_backend/internal/api/dto/history"
	"lotto_backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

func ToHistoryResponse(summary *model.HistorySummary) dto.HistoryResponse {
	records := make([]dto.RecordResponse, len(summary.Records))
	for i, r := range summary.Records {
		records[i] = dto.RecordResponse{
			ID:        r.ID,
			DrawDate:  r.DrawDate.Format(time.DateOnly),
			Kind:      string(r.Kind),
			Numbers:   r.Numbers,
			Matched:   r.Matched,
			Cost:      r.Cost,
			Prize:     r.Prize,
			Profit:    r.Prize.Sub(decimal.NewFromInt(r.Cost)),
			CreatedAt: r.CreatedAt,
		}
	}

	return dto.HistoryResponse{
		Records: records,
		Totals:  ToTotalsResponse(summary.Totals),
	}
}
