package infrastructure

import (
	"context"
	"database/sql"
)

// Executor abstraction commune de *sql.DB et *sql.Tx
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// UnitOfWork gère les transactions pour les opérations d'écriture.
// Un agrégat est l'unité de cohérence: une transaction par agrégat par opération.
type UnitOfWork interface {
	Begin() (*sql.Tx, error)
	Commit(tx *sql.Tx) error
	Rollback(tx *sql.Tx) error
	Execute(fn func(tx *sql.Tx) error) error
}

// DBUnitOfWork implémentation de UnitOfWork avec sql.DB
type DBUnitOfWork struct {
	db *sql.DB
}

// NewUnitOfWork crée une nouvelle instance de UnitOfWork
func NewUnitOfWork(db *sql.DB) UnitOfWork {
	return &DBUnitOfWork{db: db}
}

// Begin démarre une transaction
func (uow *DBUnitOfWork) Begin() (*sql.Tx, error) {
	return uow.db.Begin()
}

// Commit valide une transaction
func (uow *DBUnitOfWork) Commit(tx *sql.Tx) error {
	return tx.Commit()
}

// Rollback annule une transaction
func (uow *DBUnitOfWork) Rollback(tx *sql.Tx) error {
	return tx.Rollback()
}

// Execute exécute une fonction dans une transaction, rollback sur erreur ou panique
func (uow *DBUnitOfWork) Execute(fn func(tx *sql.Tx) error) error {
	tx, err := uow.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(tx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := uow.Rollback(tx); rbErr != nil {
			return rbErr
		}
		return err
	}

	return uow.Commit(tx)
}

// BaseRepository structure de base des repositories SQL
type BaseRepository struct {
	db  *sql.DB
	ctx context.Context
}

// NewBaseRepository crée un nouveau repository de base
func NewBaseRepository(db *sql.DB) BaseRepository {
	return BaseRepository{
		db:  db,
		ctx: context.Background(),
	}
}

// DB retourne la connexion sous-jacente
func (r *BaseRepository) DB() *sql.DB {
	return r.db
}

// Context retourne le contexte courant
func (r *BaseRepository) Context() context.Context {
	return r.ctx
}

// Query exécute une requête de lecture
func (r *BaseRepository) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return r.db.QueryContext(r.ctx, query, args...)
}

// QueryRow exécute une requête retournant au plus une ligne
func (r *BaseRepository) QueryRow(query string, args ...interface{}) *sql.Row {
	return r.db.QueryRowContext(r.ctx, query, args...)
}

// Exec exécute une requête d'écriture
func (r *BaseRepository) Exec(query string, args ...interface{}) (sql.Result, error) {
	return r.db.ExecContext(r.ctx, query, args...)
}
