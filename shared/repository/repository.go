// Package repository is the generic sqlx table gateway embedded by every domain repository.
// Columns come from the db tags of T, including embedded structs such as model.Metadata.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	"servicehub/shared/constant"
	"servicehub/shared/dto"
	"servicehub/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Repository[T any] struct {
	db         *postgres.Connection
	otel       otel.Otel
	table      string
	entity     string
	primaryKey string
	columns    []string
}

func NewRepository[T any](entityName, tableName, primaryKey string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:         db,
		otel:       otl,
		table:      tableName,
		entity:     entityName,
		primaryKey: primaryKey,
		columns:    dbColumns(reflect.TypeOf(zero)),
	}
}

func dbColumns(typ reflect.Type) []string {
	var columns []string

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

// statement joins the non-empty query parts with single spaces.
func statement(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(part string) bool { return part == "" }), " ")
}

func (repo *Repository[T]) span(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		constant.OtelRepositoryScopeName+"."+repo.entity+"."+operation)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return "WHERE " + clause, args
}

// selectList qualifies the requested columns with the table name. No columns means all of them.
func (repo *Repository[T]) selectList(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, column := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, column) {
			continue
		}

		selected = append(selected, repo.table+"."+column)
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.span(ctx, "insert")
	defer scope.End()

	placeholders := make([]string, len(repo.columns))
	for i, column := range repo.columns {
		placeholders[i] = ":" + column
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

func (repo *Repository[T]) exist(ctx context.Context, prep preparer, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.span(ctx, "exist")
	defer scope.End()

	where, args := repo.where(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(%s)", statement("SELECT 1 FROM", repo.table, where))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}
	defer stmt.Close()

	var exist bool
	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, repo.db.Read, filter)
}

func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	return repo.exist(ctx, sqltx, filter)
}

func (repo *Repository[T]) get(ctx context.Context, prep preparer, query string, args map[string]any) (T, error) {
	ctx, scope := repo.span(ctx, "get")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	stmt, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// Get returns the zero value of T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.where(filter)

	return repo.get(ctx, repo.db.Read, statement("SELECT", repo.selectList(columns...), "FROM", repo.table, where), args)
}

// GetForUpdateTx reads a single row inside sqltx and holds a row lock on it until the transaction ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.where(filter)
	if where == "" {
		var zero T

		return zero, errRequiredFilter
	}

	query := statement("SELECT", repo.selectList(columns...), "FROM", repo.table, where, "FOR UPDATE")

	return repo.get(ctx, sqltx, query, args)
}

func pagination(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

// GetAll lists rows. params.SortBy must already be restricted to known columns.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.span(ctx, "GetAll")
	defer scope.End()

	where, args := repo.where(filter)

	var ordering string
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)
	}

	query := statement("SELECT", repo.selectList(columns...), "FROM", repo.table, where, ordering, pagination(params, args))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.span(ctx, "Count")
	defer scope.End()

	where, args := repo.where(filter)

	query := statement(fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s", repo.table, repo.primaryKey, repo.table), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	var count int
	if err = stmt.GetContext(ctx, &count, args); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, fields map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "update")
	defer scope.End()

	where, args := repo.where(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(fields))
	for _, column := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, column+" = :"+column)
	}

	query := statement("UPDATE", repo.table, "SET", strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, fields)

	if _, err := exec.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, fields, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, fields, filter)
}
