// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ludora/internal/platform/database/schema"
	"github.com/taibuivan/ludora/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLanguages(ctx context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.CatalogLanguage.ID,
		schema.CatalogLanguage.Code,
		schema.CatalogLanguage.Name,
		schema.CatalogLanguage.NativeName,
		schema.CatalogLanguage.IsDefault,
		schema.CatalogLanguage.IsEnabled,
		schema.CatalogLanguage.CreatedAt,
		schema.CatalogLanguage.Table,
		schema.CatalogLanguage.Code,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	var langs []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.NativeName, &l.IsDefault, &l.IsEnabled, &l.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		langs = append(langs, l)
	}

	return langs, dberr.Wrap(rows.Err(), "list_languages")
}
