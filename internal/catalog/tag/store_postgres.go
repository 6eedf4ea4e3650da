// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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

// NewPostgresRepository constructs a tag [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTags(ctx context.Context, includeDisabled bool) ([]*Tag, error) {
	filter := ""
	if !includeDisabled {
		filter = fmt.Sprintf("WHERE %s = TRUE", schema.CatalogTag.IsEnabled)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		%s
		ORDER BY %s ASC;
	`,
		schema.CatalogTag.ID,
		schema.CatalogTag.Slug,
		schema.CatalogTag.Name,
		schema.CatalogTag.Description,
		schema.CatalogTag.IsEnabled,
		schema.CatalogTag.CreatedAt,
		schema.CatalogTag.Table,
		filter,
		schema.CatalogTag.Name,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	var tags []*Tag
	byID := make(map[int]*Tag)

	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.Description, &t.IsEnabled, &t.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	if err := repository.hydrateTranslations(ctx, byID); err != nil {
		return nil, err
	}

	return tags, nil
}

// hydrateTranslations attaches every translation row to its parent tag.
func (repository *PostgresRepository) hydrateTranslations(ctx context.Context, byID map[int]*Tag) error {
	if len(byID) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s;
	`,
		schema.CatalogTagTranslation.TagID,
		schema.CatalogTagTranslation.Locale,
		schema.CatalogTagTranslation.Name,
		schema.CatalogTagTranslation.Description,
		schema.CatalogTagTranslation.Table,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return dberr.Wrap(err, "list_tag_translations")
	}
	defer rows.Close()

	for rows.Next() {
		t := Translation{}
		if err := rows.Scan(&t.TagID, &t.Locale, &t.Name, &t.Description); err != nil {
			return dberr.Wrap(err, "scan_tag_translation")
		}

		if parent, ok := byID[t.TagID]; ok {
			parent.Translations = append(parent.Translations, t)
		}
	}

	return dberr.Wrap(rows.Err(), "list_tag_translations")
}

func (repository *PostgresRepository) CountGames(ctx context.Context) (map[int]int, error) {
	query := fmt.Sprintf(`
		SELECT gt.%s, COUNT(*)
		FROM %s gt
		JOIN %s g ON g.%s = gt.%s
		WHERE g.%s = 'PUBLISHED'
		GROUP BY gt.%s;
	`,
		schema.CatalogGameTag.TagID,
		schema.CatalogGameTag.Table,
		schema.CatalogGame.Table,
		schema.CatalogGame.ID,
		schema.CatalogGameTag.GameID,
		schema.CatalogGame.Status,
		schema.CatalogGameTag.TagID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "count_tag_games")
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var tagID, total int
		if err := rows.Scan(&tagID, &total); err != nil {
			return nil, dberr.Wrap(err, "scan_tag_game_count")
		}
		counts[tagID] = total
	}

	return counts, dberr.Wrap(rows.Err(), "count_tag_games")
}
