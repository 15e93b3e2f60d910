package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/OdontoBooking/pkg/psqlbuilder"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

const slotsTable = "availability_slots"

// PostgresTable таблица слотов в Postgres.
//
// Схема:
//
//	CREATE TABLE availability_slots (
//	    slot_date  DATE     NOT NULL,
//	    start_time TIME     NOT NULL,
//	    position   SMALLINT NOT NULL DEFAULT 0,
//	    PRIMARY KEY (slot_date, start_time)
//	);
type PostgresTable struct {
	db DBExecutor
}

// NewPostgresTable создает таблицу слотов поверх БД
func NewPostgresTable(db DBExecutor) *PostgresTable {
	return &PostgresTable{db: db}
}

// Lookup получает слоты на дату в порядке отображения
func (r *PostgresTable) Lookup(ctx context.Context, date types.Date) ([]types.TimeString, error) {
	query, args, err := lookupQuery(date)
	if err != nil {
		return nil, fmt.Errorf("%w: Lookup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Lookup - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: Lookup - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Lookup - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// AvailableDates получает даты диапазона, у которых есть хотя бы один слот
func (r *PostgresTable) AvailableDates(ctx context.Context, from, to types.Date) ([]types.Date, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	query, args, err := availableDatesQuery(from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailableDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailableDates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]types.Date, 0)
	for rows.Next() {
		var date types.Date
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: AvailableDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: AvailableDates - iterate rows: %v", ErrScanRow, err)
	}

	return dates, nil
}

func lookupQuery(date types.Date) (string, []interface{}, error) {
	return psqlbuilder.Select("start_time").
		From(slotsTable).
		Where(squirrel.Eq{"slot_date": string(date)}).
		OrderBy("position ASC", "start_time ASC").
		ToSql()
}

func availableDatesQuery(from, to types.Date) (string, []interface{}, error) {
	return psqlbuilder.Select("DISTINCT slot_date").
		From(slotsTable).
		Where(squirrel.GtOrEq{"slot_date": string(from)}).
		Where(squirrel.LtOrEq{"slot_date": string(to)}).
		OrderBy("slot_date ASC").
		ToSql()
}
