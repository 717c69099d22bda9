package catalog_repo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"orcado/internal/core/apperror"
	"orcado/internal/domain/catalogs/client"
	"orcado/internal/infrastructure/storage/postgres"
)

const clientTable = "cat_clients"

var docPunctuationRE = regexp.MustCompile(`[\s.\-/]`)

// Compile-time check that ClientRepo implements client.Repository.
var _ client.Repository = (*ClientRepo)(nil)

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(tm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			tm,
			clientTable,
			postgres.ExtractDBColumns[client.Client](),
			func() *client.Client { return &client.Client{} },
		),
	}
}

// FindByDocument retrieves a client by tax ID. Punctuation in the stored
// and the searched document is ignored, so "12.345.678/0001-90" matches
// "12345678000190".
func (r *ClientRepo) FindByDocument(ctx context.Context, document string) (*client.Client, error) {
	cleaned := docPunctuationRE.ReplaceAllString(document, "")

	q := r.baseSelect().
		Where(squirrel.Expr(
			"regexp_replace(coalesce(document, ''), '[\\s./-]', '', 'g') = ?", cleaned)).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c client.Client
	if err := pgxscan.Get(ctx, r.Querier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("client", document)
		}
		return nil, fmt.Errorf("find by document: %w", err)
	}
	return &c, nil
}

// Count returns the number of active clients.
func (r *ClientRepo) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.Builder().
		Select("COUNT(*)").
		From(clientTable).
		Where(squirrel.Eq{"deletion_mark": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return count, nil
}
