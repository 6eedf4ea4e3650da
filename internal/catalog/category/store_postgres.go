// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ludora/internal/platform/database/schema"
	"github.com/taibuivan/ludora/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a category [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(ctx context.Context, includeDisabled bool) ([]*Category, error) {
	filter := ""
	if !includeDisabled {
		filter = fmt.Sprintf("WHERE %s = TRUE", schema.CatalogCategory.IsEnabled)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		%s
		ORDER BY %s ASC, %s ASC;
	`,
		schema.CatalogCategory.ID,
		schema.CatalogCategory.ParentID,
		schema.CatalogCategory.Slug,
		schema.CatalogCategory.Name,
		schema.CatalogCategory.Description,
		schema.CatalogCategory.Icon,
		schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.IsEnabled,
		schema.CatalogCategory.SEOTitle,
		schema.CatalogCategory.SEODescription,
		schema.CatalogCategory.CreatedAt,
		schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.Table,
		filter,
		schema.CatalogCategory.SortOrder,
		schema.CatalogCategory.Name,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	byID := make(map[int]*Category)

	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(
			&c.ID, &c.ParentID, &c.Slug, &c.Name, &c.Description, &c.Icon,
			&c.SortOrder, &c.IsEnabled, &c.SEOTitle, &c.SEODescription,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	if err := repository.hydrateTranslations(ctx, byID); err != nil {
		return nil, err
	}

	return categories, nil
}

// hydrateTranslations attaches every translation row to its parent category.
func (repository *PostgresRepository) hydrateTranslations(ctx context.Context, byID map[int]*Category) error {
	if len(byID) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s;
	`,
		schema.CatalogCategoryTranslation.CategoryID,
		schema.CatalogCategoryTranslation.Locale,
		schema.CatalogCategoryTranslation.Name,
		schema.CatalogCategoryTranslation.Description,
		schema.CatalogCategoryTranslation.SEOTitle,
		schema.CatalogCategoryTranslation.SEODescription,
		schema.CatalogCategoryTranslation.Table,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return dberr.Wrap(err, "list_category_translations")
	}
	defer rows.Close()

	for rows.Next() {
		t := Translation{}
		if err := rows.Scan(
			&t.CategoryID, &t.Locale, &t.Name, &t.Description,
			&t.SEOTitle, &t.SEODescription,
		); err != nil {
			return dberr.Wrap(err, "scan_category_translation")
		}

		if c, ok := byID[t.CategoryID]; ok {
			c.Translations = append(c.Translations, t)
		}
	}

	return dberr.Wrap(rows.Err(), "list_category_translations")
}

func (repository *PostgresRepository) CountGames(ctx context.Context) (map[int]int, error) {
	query := fmt.Sprintf(`
		SELECT gc.%s, COUNT(*)
		FROM %s gc
		JOIN %s g ON g.%s = gc.%s
		WHERE g.%s = 'PUBLISHED'
		GROUP BY gc.%s;
	`,
		schema.CatalogGameCategory.CategoryID,
		schema.CatalogGameCategory.Table,
		schema.CatalogGame.Table,
		schema.CatalogGame.ID,
		schema.CatalogGameCategory.GameID,
		schema.CatalogGame.Status,
		schema.CatalogGameCategory.CategoryID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "count_category_games")
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var categoryID, total int
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, dberr.Wrap(err, "scan_category_game_count")
		}
		counts[categoryID] = total
	}

	return counts, dberr.Wrap(rows.Err(), "count_category_games")
}
