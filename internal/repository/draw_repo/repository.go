package draw_repo

import (
	"context"
	"errors"
	"lotto_backend/internal/model"
	"lotto_backend/internal/repository"
	"lotto_backend/internal/repository/pg"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "draws"
	colDate    = "draw_date"
	colNumbers = "numbers"
	colSource  = "source"
	colSavedAt = "saved_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDrawRepository(dbc *pgxpool.Pool) repository.DrawRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetDraw returns model.ErrDrawNotFound when no draw is stored for date.
func (r *repo) GetDraw(ctx context.Context, date time.Time) (*model.DrawResult, error) {
	query := pg.Builder.Select(colDate, colNumbers, colSource).
		From(table).
		Where(sq.Eq{colDate: dateOnly(date)})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		res     model.DrawResult
		numbers []int32
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&res.Date, &numbers, &res.Source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDrawNotFound
		}
		return nil, err
	}

	res.Numbers = model.Draw(pg.ToInts(numbers))
	return &res, nil
}

// SaveDraw stores the draw, replacing any earlier entry for the same date.
func (r *repo) SaveDraw(ctx context.Context, draw model.DrawResult) error {
	query := pg.Builder.Insert(table).
		Columns(colDate, colNumbers, colSource, colSavedAt).
		Values(dateOnly(draw.Date), pg.ToInt32s(draw.Numbers), draw.Source, time.Now()).
		Suffix("ON CONFLICT (" + colDate + ") DO UPDATE SET " +
			colNumbers + " = EXCLUDED." + colNumbers + ", " +
			colSource + " = EXCLUDED." + colSource + ", " +
			colSavedAt + " = EXCLUDED." + colSavedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
