package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

const (
	siteStateTable = "site_state"
	siteStateRowID = 1
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresSiteRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
	now    func() time.Time
}

// NewPostgresSiteRepo stores the site document as one JSONB row.
func NewPostgresSiteRepo(db *pgxpool.Pool, log logger.Logger) site.Repository {
	return &postgresSiteRepo{db: db, logger: log, now: time.Now}
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresSiteRepo) load(ctx context.Context, q queryRower, forUpdate bool) (*site.State, error) {
	builder := psql.Select("document").
		From(siteStateTable).
		Where(sq.Eq{"id": siteStateRowID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build site query", err)
	}

	var document []byte
	if err := q.QueryRow(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.NewState(), nil
		}
		return nil, apperror.NewInternal("failed to query site", err)
	}
	return decodeState(document, r.now(), r.logger), nil
}

func (r *postgresSiteRepo) Load(ctx context.Context) (*site.State, error) {
	return r.load(ctx, r.db, false)
}

func (r *postgresSiteRepo) Save(ctx context.Context, state *site.State) error {
	query, args, err := r.upsert(state)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return apperror.NewInternal("failed to save site", err)
	}
	return nil
}

// Update locks the row for the whole read-modify-write. The row is seeded
// first so that two writers racing on an empty table still serialise.
func (r *postgresSiteRepo) Update(ctx context.Context, fn func(state *site.State) error) (*site.State, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	seed, seedArgs, err := psql.Insert(siteStateTable).
		Columns("id", "document", "updated_at").
		Values(siteStateRowID, []byte("{}"), r.now().UTC()).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build seed query", err)
	}
	if _, err := tx.Exec(ctx, seed, seedArgs...); err != nil {
		return nil, apperror.NewInternal("failed to seed site row", err)
	}

	state, err := r.load(ctx, tx, true)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}

	query, args, err := r.upsert(state)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, apperror.NewInternal("failed to save site", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit site", err)
	}
	return state, nil
}

func (r *postgresSiteRepo) upsert(state *site.State) (string, []any, error) {
	document, err := json.Marshal(state)
	if err != nil {
		return "", nil, apperror.NewInternal("failed to marshal site", err)
	}
	query, args, err := psql.Insert(siteStateTable).
		Columns("id", "document", "updated_at").
		Values(siteStateRowID, document, r.now().UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return "", nil, apperror.NewInternal("failed to build upsert query", err)
	}
	return query, args, nil
}
