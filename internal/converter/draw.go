package converter

import (
	dto "lotto_backend/internal/api/dto/draw"
	"lotto_backend/internal/model"
	"time"
)

func ToDrawResponse(d *model.DrawResult) dto.DrawResponse {
	return dto.DrawResponse{
		Date:    d.Date.Format(time.DateOnly),
		Numbers: d.Numbers,
		Source:  d.Source,
	}
}
