// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ludora/internal/platform/database/schema"
	"github.com/taibuivan/ludora/internal/platform/dberr"
	"github.com/taibuivan/ludora/pkg/pointer"
)

// PostgresRepository implements [Repository] on a pgx connection pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a game [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// gameColumns is the SELECT list shared by every game query, aliased to g.
func gameColumns() string {
	t := schema.CatalogGame
	cols := t.Columns()
	for i, col := range cols {
		cols[i] = "g." + col
	}
	return strings.Join(cols, ", ")
}

// buildWhere translates a [Filter] into SQL conditions and positional args.
// Published status is always enforced.
func buildWhere(filter Filter) (string, []any) {
	conditions := []string{fmt.Sprintf("g.%s = 'PUBLISHED'", schema.CatalogGame.Status)}
	var args []any

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategoryID != 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s gc WHERE gc.%s = g.%s AND gc.%s = %s)",
			schema.CatalogGameCategory.Table,
			schema.CatalogGameCategory.GameID,
			schema.CatalogGame.ID,
			schema.CatalogGameCategory.CategoryID,
			arg(filter.CategoryID),
		))
	}

	if filter.TagID != 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s gt WHERE gt.%s = g.%s AND gt.%s = %s)",
			schema.CatalogGameTag.Table,
			schema.CatalogGameTag.GameID,
			schema.CatalogGame.ID,
			schema.CatalogGameTag.TagID,
			arg(filter.TagID),
		))
	}

	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(g.%s ILIKE %s OR g.%s ILIKE %s OR EXISTS (SELECT 1 FROM %s tr WHERE tr.%s = g.%s AND tr.%s ILIKE %s))",
			schema.CatalogGame.Title, pattern,
			schema.CatalogGame.Description, pattern,
			schema.CatalogGameTranslation.Table,
			schema.CatalogGameTranslation.GameID,
			schema.CatalogGame.ID,
			schema.CatalogGameTranslation.Title, pattern,
		))
	}

	if filter.FeaturedOnly {
		conditions = append(conditions, fmt.Sprintf("g.%s = TRUE", schema.CatalogGame.IsFeatured))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// orderBy maps a [Sort] onto a deterministic ORDER BY clause. ID is always
// the final tie-break so paging never duplicates rows.
func orderBy(sort Sort) string {
	t := schema.CatalogGame
	switch sort {
	case SortNewest:
		return fmt.Sprintf("ORDER BY g.%s DESC, g.%s ASC", t.ReleasedAt, t.ID)
	case SortName:
		return fmt.Sprintf("ORDER BY g.%s ASC, g.%s ASC", t.Title, t.ID)
	case SortRating:
		return fmt.Sprintf("ORDER BY g.%s DESC, g.%s DESC, g.%s ASC", t.Rating, t.RatingCount, t.ID)
	default:
		return fmt.Sprintf("ORDER BY g.%s DESC, g.%s ASC", t.PlayCount, t.ID)
	}
}

func (repository *PostgresRepository) ListGames(ctx context.Context, filter Filter, sort Sort, limit, offset int) ([]*Game, int, error) {
	where, args := buildWhere(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s g %s;", schema.CatalogGame.Table, where)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_games")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s g
		%s
		%s
		LIMIT $%d OFFSET $%d;
	`,
		gameColumns(),
		schema.CatalogGame.Table,
		where,
		orderBy(sort),
		len(args)+1,
		len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_games")
	}
	defer rows.Close()

	var games []*Game
	byID := make(map[int]*Game)

	for rows.Next() {
		g := &Game{}
		if err := rows.Scan(
			&g.ID, &g.Slug, &g.Title, &g.Description, &g.Instructions,
			&g.ThumbnailURL, &g.GameURL, &g.Width, &g.Height, &g.Status,
			&g.IsFeatured, &g.PlayCount, &g.Rating, &g.RatingCount,
			&g.SEOTitle, &g.SEODescription, &g.ReleasedAt, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_game")
		}
		games = append(games, g)
		byID[g.ID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_games")
	}

	if err := repository.hydrate(ctx, byID); err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

func (repository *PostgresRepository) GetGameBySlug(ctx context.Context, slug string) (*Game, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s g
		WHERE g.%s = $1 AND g.%s = 'PUBLISHED';
	`,
		gameColumns(),
		schema.CatalogGame.Table,
		schema.CatalogGame.Slug,
		schema.CatalogGame.Status,
	)

	g := &Game{}
	err := repository.db.QueryRow(ctx, query, slug).Scan(
		&g.ID, &g.Slug, &g.Title, &g.Description, &g.Instructions,
		&g.ThumbnailURL, &g.GameURL, &g.Width, &g.Height, &g.Status,
		&g.IsFeatured, &g.PlayCount, &g.Rating, &g.RatingCount,
		&g.SEOTitle, &g.SEODescription, &g.ReleasedAt, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_game")
	}

	if err := repository.hydrate(ctx, map[int]*Game{g.ID: g}); err != nil {
		return nil, err
	}

	return g, nil
}

func (repository *PostgresRepository) AddPlays(ctx context.Context, deltas map[string]int64) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + $2
		WHERE %s = $1;
	`,
		schema.CatalogGame.Table,
		schema.CatalogGame.PlayCount,
		schema.CatalogGame.PlayCount,
		schema.CatalogGame.Slug,
	)

	for slug, delta := range deltas {
		if delta <= 0 {
			continue
		}
		if _, err := repository.db.Exec(ctx, query, slug, delta); err != nil {
			return dberr.Wrap(err, "add_plays")
		}
	}
	return nil
}

// hydrate attaches translations, category links, and tag links to every game
// in byID.
func (repository *PostgresRepository) hydrate(ctx context.Context, byID map[int]*Game) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	if err := repository.hydrateTranslations(ctx, byID, ids); err != nil {
		return err
	}
	if err := repository.hydrateCategories(ctx, byID, ids); err != nil {
		return err
	}
	return repository.hydrateTags(ctx, byID, ids)
}

func (repository *PostgresRepository) hydrateTranslations(ctx context.Context, byID map[int]*Game, ids []int) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1);
	`,
		schema.CatalogGameTranslation.GameID,
		schema.CatalogGameTranslation.Locale,
		schema.CatalogGameTranslation.Title,
		schema.CatalogGameTranslation.Description,
		schema.CatalogGameTranslation.Instructions,
		schema.CatalogGameTranslation.SEOTitle,
		schema.CatalogGameTranslation.SEODescription,
		schema.CatalogGameTranslation.Table,
		schema.CatalogGameTranslation.GameID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_game_translations")
	}
	defer rows.Close()

	for rows.Next() {
		t := Translation{}
		if err := rows.Scan(&t.GameID, &t.Locale, &t.Title, &t.Description, &t.Instructions, &t.SEOTitle, &t.SEODescription); err != nil {
			return dberr.Wrap(err, "scan_game_translation")
		}
		if g, ok := byID[t.GameID]; ok {
			g.Translations = append(g.Translations, t)
		}
	}

	return dberr.Wrap(rows.Err(), "list_game_translations")
}

func (repository *PostgresRepository) hydrateCategories(ctx context.Context, byID map[int]*Game, ids []int) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = ANY($1);
	`,
		schema.CatalogGameCategory.GameID,
		schema.CatalogGameCategory.CategoryID,
		schema.CatalogGameCategory.IsMain,
		schema.CatalogGameCategory.Table,
		schema.CatalogGameCategory.GameID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_game_categories")
	}
	defer rows.Close()

	for rows.Next() {
		var gameID, categoryID int
		var isMain bool
		if err := rows.Scan(&gameID, &categoryID, &isMain); err != nil {
			return dberr.Wrap(err, "scan_game_category")
		}

		g, ok := byID[gameID]
		if !ok {
			continue
		}
		g.CategoryIDs = append(g.CategoryIDs, categoryID)
		if isMain {
			g.MainCategoryID = pointer.To(categoryID)
		}
	}

	return dberr.Wrap(rows.Err(), "list_game_categories")
}

func (repository *PostgresRepository) hydrateTags(ctx context.Context, byID map[int]*Game, ids []int) error {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = ANY($1);
	`,
		schema.CatalogGameTag.GameID,
		schema.CatalogGameTag.TagID,
		schema.CatalogGameTag.Table,
		schema.CatalogGameTag.GameID,
	)

	rows, err := repository.db.Query(ctx, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_game_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var gameID, tagID int
		if err := rows.Scan(&gameID, &tagID); err != nil {
			return dberr.Wrap(err, "scan_game_tag")
		}
		if g, ok := byID[gameID]; ok {
			g.TagIDs = append(g.TagIDs, tagID)
		}
	}

	return dberr.Wrap(rows.Err(), "list_game_tags")
}
