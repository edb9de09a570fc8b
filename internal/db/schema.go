//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is an interface that *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Schema SQL for the demo dataset.
const createSchemaSQL = `
-- Company: market participants
CREATE TABLE IF NOT EXISTS demo_company (
    name     VARCHAR(100) PRIMARY KEY,
    location VARCHAR(100) NOT NULL
);

-- Company status: declared surplus or deficit per commodity
CREATE TABLE IF NOT EXISTS demo_company_status (
    company   VARCHAR(100) NOT NULL REFERENCES demo_company(name) ON DELETE CASCADE,
    position  INTEGER NOT NULL,
    commodity VARCHAR(30) NOT NULL,
    status    VARCHAR(10) NOT NULL CHECK (status IN ('surplus', 'deficit')),
    amount    DOUBLE PRECISION NOT NULL,
    unit      VARCHAR(10) NOT NULL,
    PRIMARY KEY (company, position)
);

-- Trade: completed historical trades
CREATE TABLE IF NOT EXISTS demo_trade (
    id                UUID PRIMARY KEY,
    commodity         VARCHAR(30) NOT NULL,
    trade_type        VARCHAR(4) NOT NULL CHECK (trade_type IN ('buy', 'sell')),
    amount            DOUBLE PRECISION NOT NULL,
    unit              VARCHAR(10) NOT NULL,
    price             DOUBLE PRECISION NOT NULL,
    currency          CHAR(3) NOT NULL,
    status            VARCHAR(20) NOT NULL,
    traded_at         TIMESTAMPTZ NOT NULL,
    requester_company VARCHAR(100) NOT NULL REFERENCES demo_company(name),
    fulfiller_company VARCHAR(100) NOT NULL REFERENCES demo_company(name),
    CHECK (requester_company <> fulfiller_company)
);

CREATE INDEX IF NOT EXISTS idx_demo_trade_commodity_time ON demo_trade (commodity, traded_at);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS demo_trade CASCADE;
DROP TABLE IF EXISTS demo_company_status CASCADE;
DROP TABLE IF EXISTS demo_company CASCADE;
`

// CreateSchema creates the dataset tables.
func CreateSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the dataset tables.
func DropSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, dropSchemaSQL)
	return err
}
