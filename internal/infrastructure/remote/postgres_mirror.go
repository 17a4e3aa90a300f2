package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paksupply/internal/domain/repository"
)

// Schema creates the mirrored tables when they do not exist yet. Column names
// match the Supabase project so either mirror can point at the same database.
const Schema = `
create table if not exists manufacturers (
	id text primary key,
	email text,
	password text,
	phone text,
	company_name text,
	owner_name text,
	owner_phone text,
	manager_phone text,
	address text,
	city text,
	status text,
	placement_tier text default 'BASIC',
	is_trusted_partner boolean default false,
	plan text,
	is_israel_free_claim boolean,
	government_doc_url text,
	signup_date timestamptz default now(),
	rating double precision default 0,
	rating_count integer default 0,
	version bigint default 0,
	updated_at timestamptz
);

create table if not exists products (
	id text primary key,
	manufacturer_id text,
	manufacturer_name text,
	name text,
	brand text,
	category text,
	price bigint,
	description text,
	image_urls text,
	is_israel_free boolean,
	is_israel_free_approved boolean,
	status text,
	order_whatsapp text,
	created_at timestamptz,
	version bigint default 0,
	updated_at timestamptz
);
`

type PostgresMirror struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPostgresMirror(pool *pgxpool.Pool) *PostgresMirror {
	return &PostgresMirror{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (m *PostgresMirror) EnsureSchema(ctx context.Context) error {
	if _, err := m.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("remote: ensure schema: %w", err)
	}
	return nil
}

func (m *PostgresMirror) FetchAll(ctx context.Context, kind repository.EntityKind) ([]json.RawMessage, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	sqlStr, args, err := m.sb.Select(t.wireColumns()...).From(t.name).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("remote: fetch %s: %w", t.name, err)
	}
	wireRows, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("remote: fetch %s: %w", t.name, err)
	}

	docs := make([]json.RawMessage, 0, len(wireRows))
	for _, row := range wireRows {
		doc, err := t.fromWire(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *PostgresMirror) Upsert(ctx context.Context, kind repository.EntityKind, id string, doc json.RawMessage) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	row, err := t.toWire(doc)
	if err != nil {
		return err
	}

	sqlStr, args, err := m.upsertQuery(t, row)
	if err != nil {
		return err
	}
	if _, err := m.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("remote: upsert %s/%s: %w", t.name, id, err)
	}
	return nil
}

func (m *PostgresMirror) upsertQuery(t table, row map[string]interface{}) (string, []interface{}, error) {
	cols := sortedKeys(row)
	vals := make([]interface{}, 0, len(cols))
	updates := make([]string, 0, len(cols))
	for _, c := range cols {
		vals = append(vals, row[c])
		if c != "id" {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
		}
	}

	q := m.sb.Insert(t.name).Columns(cols...).Values(vals...)
	if len(updates) > 0 {
		q = q.Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", "))
	} else {
		q = q.Suffix("ON CONFLICT (id) DO NOTHING")
	}
	return q.ToSql()
}

func (m *PostgresMirror) UpdateFields(ctx context.Context, kind repository.EntityKind, id string, fields map[string]interface{}, expectedVersion int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	row, err := t.wireFields(fields)
	if err != nil {
		return err
	}
	if len(row) == 0 {
		return nil
	}

	sqlStr, args, err := m.updateQuery(t, id, row, expectedVersion)
	if err != nil {
		return err
	}

	ct, err := m.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("remote: update %s/%s: %w", t.name, id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("remote: update %s/%s at version %d: %w", t.name, id, expectedVersion, repository.ErrVersionMismatch)
	}
	return nil
}

// updateQuery only matches the row while it is still at expectedVersion.
func (m *PostgresMirror) updateQuery(t table, id string, row map[string]interface{}, expectedVersion int64) (string, []interface{}, error) {
	return m.sb.Update(t.name).
		SetMap(row).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("coalesce(version, 0) = ?", expectedVersion)).
		ToSql()
}
