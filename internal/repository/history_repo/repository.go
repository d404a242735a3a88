package history_repo

import (
	"context"
	"lotto_backend/internal/model"
	"lotto_backend/internal/repository"
	"lotto_backend/internal/repository/pg"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "settlement_history"
	colID        = "id"
	colUserID    = "user_id"
	colDrawDate  = "draw_date"
	colKind      = "kind"
	colNumbers   = "numbers"
	colMatched   = "matched"
	colCost      = "cost"
	colPrize     = "prize"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// SaveRecords inserts all records in one statement, inside the caller's
// transaction when there is one.
func (r *repo) SaveRecords(ctx context.Context, records []model.HistoryRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := pg.Builder.Insert(table).
		Columns(colID, colUserID, colDrawDate, colKind, colNumbers, colMatched, colCost, colPrize, colCreatedAt)
	for _, rec := range records {
		query = query.Values(
			rec.ID,
			rec.UserID,
			rec.DrawDate,
			string(rec.Kind),
			pg.ToInt32s(rec.Numbers),
			pg.ToInt32s(rec.Matched),
			rec.Cost,
			rec.Prize,
			rec.CreatedAt,
		)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListRecords returns the user's records, newest draw first.
func (r *repo) ListRecords(ctx context.Context, userID int, filter model.HistoryFilter) ([]model.HistoryRecord, error) {
	query := pg.Builder.Select(colID, colUserID, colDrawDate, colKind, colNumbers, colMatched, colCost, colPrize, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colDrawDate+" DESC", colCreatedAt+" ASC")
	if !filter.From.IsZero() {
		query = query.Where(sq.GtOrEq{colDrawDate: filter.From})
	}
	if !filter.To.IsZero() {
		query = query.Where(sq.LtOrEq{colDrawDate: filter.To})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.HistoryRecord
	for rows.Next() {
		var (
			rec              model.HistoryRecord
			kind             string
			numbers, matched []int32
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.DrawDate, &kind, &numbers, &matched, &rec.Cost, &rec.Prize, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Kind = model.BetKind(kind)
		rec.Numbers = pg.ToInts(numbers)
		rec.Matched = pg.ToInts(matched)
		records = append(records, rec)
	}

	return records, rows.Err()
}
