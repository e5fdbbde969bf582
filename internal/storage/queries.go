package storage

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Gasto mirrors one row of the gastos table.
type Gasto struct {
	Gastosid           int64
	Montopresupuestado float64
	Descripcion        string
	Montoreal          float64
	Categoria          string
	Fecha              string
}

const createGasto = `INSERT INTO gastos (montopresupuestado, descripcion, montoreal, categoria, fecha)
VALUES (?, ?, ?, ?, ?)`

type CreateGastoParams struct {
	Montopresupuestado float64
	Descripcion        string
	Montoreal          float64
	Categoria          string
	Fecha              string
}

func (q *Queries) CreateGasto(ctx context.Context, arg CreateGastoParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createGasto,
		arg.Montopresupuestado,
		arg.Descripcion,
		arg.Montoreal,
		arg.Categoria,
		arg.Fecha,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const getGasto = `SELECT gastosid, montopresupuestado, descripcion, montoreal, categoria, fecha
FROM gastos WHERE gastosid = ?`

func (q *Queries) GetGasto(ctx context.Context, gastosid int64) (Gasto, error) {
	row := q.db.QueryRowContext(ctx, getGasto, gastosid)
	var i Gasto
	err := row.Scan(
		&i.Gastosid,
		&i.Montopresupuestado,
		&i.Descripcion,
		&i.Montoreal,
		&i.Categoria,
		&i.Fecha,
	)
	return i, err
}

const listGastos = `SELECT gastosid, montopresupuestado, descripcion, montoreal, categoria, fecha
FROM gastos ORDER BY gastosid`

func (q *Queries) ListGastos(ctx context.Context) ([]Gasto, error) {
	rows, err := q.db.QueryContext(ctx, listGastos)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Gasto
	for rows.Next() {
		var i Gasto
		if err := rows.Scan(
			&i.Gastosid,
			&i.Montopresupuestado,
			&i.Descripcion,
			&i.Montoreal,
			&i.Categoria,
			&i.Fecha,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateGasto = `UPDATE gastos
SET montopresupuestado = ?, descripcion = ?, montoreal = ?, categoria = ?, fecha = ?
WHERE gastosid = ?`

type UpdateGastoParams struct {
	Montopresupuestado float64
	Descripcion        string
	Montoreal          float64
	Categoria          string
	Fecha              string
	Gastosid           int64
}

// UpdateGasto returns the number of rows changed (0 or 1).
func (q *Queries) UpdateGasto(ctx context.Context, arg UpdateGastoParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateGasto,
		arg.Montopresupuestado,
		arg.Descripcion,
		arg.Montoreal,
		arg.Categoria,
		arg.Fecha,
		arg.Gastosid,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteGasto = `DELETE FROM gastos WHERE gastosid = ?`

// DeleteGasto returns the number of rows removed (0 or 1).
func (q *Queries) DeleteGasto(ctx context.Context, gastosid int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteGasto, gastosid)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listActualInRange = `SELECT categoria, montoreal
FROM gastos
WHERE fecha BETWEEN ? AND ?
ORDER BY gastosid`

type ListActualInRangeRow struct {
	Categoria string
	Montoreal float64
}

func (q *Queries) ListActualInRange(ctx context.Context, start, end string) ([]ListActualInRangeRow, error) {
	rows, err := q.db.QueryContext(ctx, listActualInRange, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListActualInRangeRow
	for rows.Next() {
		var i ListActualInRangeRow
		if err := rows.Scan(&i.Categoria, &i.Montoreal); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
