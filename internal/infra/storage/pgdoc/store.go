package pgdoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const tableName = "salon_documents"

// serializationFailure код ошибки PostgreSQL при конфликте сериализуемых транзакций
const serializationFailure = "40001"

// Schema DDL таблицы документов
const Schema = `CREATE TABLE IF NOT EXISTS salon_documents (
	id         TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	version    BIGINT NOT NULL DEFAULT 1,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store хранит документ одной строкой JSONB.
// Update выполняется в сериализуемой транзакции с блокировкой строки и проверкой версии.
type Store struct {
	db        DBExecutor
	txManager TransactionManager
	id        string
}

// New создает хранилище для документа с идентификатором id
func New(db DBExecutor, txManager TransactionManager, id string) *Store {
	return &Store{db: db, txManager: txManager, id: id}
}

// Migrate создает таблицу, если ее нет
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: Migrate: %v", ErrExecQuery, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	if err := s.ensureRow(ctx); err != nil {
		return nil, err
	}
	doc, _, err := s.selectDocument(ctx, false)
	return doc, err
}

// Save перезаписывает документ безусловно, увеличивая версию
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	data, err := document.Encode(doc)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "body").
		Values(s.id, string(data)).
		Suffix("ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, version = " + tableName + ".version + 1, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - exec upsert: %v", document.ErrWrite, err)
	}
	return nil
}

// Update читает документ с FOR UPDATE, применяет fn и пишет с проверкой версии
func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	if err := s.ensureRow(ctx); err != nil {
		return err
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		doc, version, err := s.selectDocument(txCtx, true)
		if err != nil {
			return err
		}

		if err := fn(doc); err != nil {
			return err
		}

		return s.updateDocument(txCtx, doc, version)
	})

	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", document.ErrConcurrentUpdate, err)
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}

// ensureRow создает пустой документ, если строки еще нет
func (s *Store) ensureRow(ctx context.Context) error {
	data, err := document.Encode(domain.NewDocument())
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "body").
		Values(s.id, string(data)).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ensureRow - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ensureRow - exec insert: %v", document.ErrWrite, err)
	}
	return nil
}

func (s *Store) selectDocument(ctx context.Context, forUpdate bool) (*domain.Document, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	builder := psqlbuilder.Select("body", "version").
		From(tableName).
		Where(sq.Eq{"id": s.id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: selectDocument - build select query: %v", ErrBuildQuery, err)
	}

	var (
		body    []byte
		version int64
	)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&body, &version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, fmt.Errorf("%w: document %q does not exist", document.ErrRead, s.id)
		}
		if isSerializationFailure(err) {
			return nil, 0, fmt.Errorf("%w: %v", document.ErrConcurrentUpdate, err)
		}
		return nil, 0, fmt.Errorf("%w: selectDocument - scan: %v", ErrScanRow, err)
	}

	doc, err := document.Decode(body)
	if err != nil {
		return nil, 0, err
	}
	return doc, version, nil
}

func (s *Store) updateDocument(ctx context.Context, doc *domain.Document, version int64) error {
	data, err := document.Encode(doc)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("body", string(data)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.id, "version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: updateDocument - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("%w: %v", document.ErrConcurrentUpdate, err)
		}
		return fmt.Errorf("%w: updateDocument - exec update: %v", document.ErrWrite, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: updateDocument - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: version %d is stale", document.ErrConcurrentUpdate, version)
	}
	return nil
}
