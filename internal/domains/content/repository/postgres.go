package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"cms-backend/internal/domains/content"
	"cms-backend/pkg/database"
)

// PostgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) content.Repository {
	return &postgresRepository{pool: pool}
}

const contentColumns = `
	id, kind, title, slug, body, tags, category_id, video_url, price,
	status, author_owner_id, created_by, updated_by, published_at,
	version, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, item *content.ContentItem) (*content.ContentItem, error) {
	query := `
		INSERT INTO content_items (
			id, kind, title, slug, body, tags, category_id, video_url, price,
			status, author_owner_id, created_by, updated_by, published_at,
			version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + contentColumns

	row := r.pool.QueryRow(ctx, query,
		item.ID,
		item.Kind,
		item.Title,
		item.Slug,
		item.Body,
		pq.Array(item.Tags),
		item.CategoryID,
		item.VideoURL,
		nullDecimal(item.Price),
		item.Status,
		item.AuthorOwnerID,
		item.CreatedBy,
		item.UpdatedBy,
		item.PublishedAt,
		item.Version,
		item.CreatedAt,
		item.UpdatedAt,
	)

	created, err := scanContentItem(row)
	if err != nil {
		return nil, fmt.Errorf("insert content item: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*content.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1`

	item, err := scanContentItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		return nil, fmt.Errorf("get content item: %w", err)
	}
	return item, nil
}

func (r *postgresRepository) List(ctx context.Context, filter content.ListFilter) ([]content.ContentItem, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filter.Kind != nil {
		where = append(where, fmt.Sprintf("kind = $%d", argIndex))
		args = append(args, *filter.Kind)
		argIndex++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, *filter.CategoryID)
		argIndex++
	}
	if filter.AuthorOwnerID != nil {
		where = append(where, fmt.Sprintf("author_owner_id = $%d", argIndex))
		args = append(args, *filter.AuthorOwnerID)
		argIndex++
	}
	if filter.Tag != "" {
		where = append(where, fmt.Sprintf("$%d = ANY(tags)", argIndex))
		args = append(args, filter.Tag)
		argIndex++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM content_items WHERE ` + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count content items: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM content_items
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, contentColumns, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()

	items := make([]content.ContentItem, 0, filter.Limit)
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return items, total, nil
}

// Update writes the row only where version still matches, incrementing
// the version in the same statement. Stamp, fields and status land in
// one atomic round trip; a stale currentVersion hits zero rows and is
// reported as a conflict (or not-found when the row is gone). The
// write and the disambiguating existence probe run in one transaction
// so they see the same snapshot.
func (r *postgresRepository) Update(ctx context.Context, item *content.ContentItem, currentVersion int) (*content.ContentItem, error) {
	query := `
		UPDATE content_items SET
			title = $1,
			slug = $2,
			body = $3,
			tags = $4,
			category_id = $5,
			video_url = $6,
			price = $7,
			status = $8,
			updated_by = $9,
			published_at = $10,
			updated_at = $11,
			version = version + 1
		WHERE id = $12 AND version = $13
		RETURNING ` + contentColumns

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*content.ContentItem, error) {
		row := tx.QueryRow(ctx, query,
			item.Title,
			item.Slug,
			item.Body,
			pq.Array(item.Tags),
			item.CategoryID,
			item.VideoURL,
			nullDecimal(item.Price),
			item.Status,
			item.UpdatedBy,
			item.PublishedAt,
			item.UpdatedAt,
			item.ID,
			currentVersion,
		)

		updated, err := scanContentItem(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Zero rows: either the row vanished or the version is
				// stale. Distinguish so the caller maps 404 vs 409.
				var exists bool
				checkErr := tx.QueryRow(ctx,
					`SELECT EXISTS(SELECT 1 FROM content_items WHERE id = $1)`, item.ID,
				).Scan(&exists)
				if checkErr == nil && !exists {
					return nil, content.ErrContentNotFound
				}
				return nil, content.ErrVersionMismatch
			}
			return nil, fmt.Errorf("update content item: %w", err)
		}
		return updated, nil
	})
}

// scanContentItem scans one row in contentColumns order.
func scanContentItem(row pgx.Row) (*content.ContentItem, error) {
	var item content.ContentItem
	var price decimal.NullDecimal

	err := row.Scan(
		&item.ID,
		&item.Kind,
		&item.Title,
		&item.Slug,
		&item.Body,
		pq.Array(&item.Tags),
		&item.CategoryID,
		&item.VideoURL,
		&price,
		&item.Status,
		&item.AuthorOwnerID,
		&item.CreatedBy,
		&item.UpdatedBy,
		&item.PublishedAt,
		&item.Version,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		item.Price = &price.Decimal
	}
	return &item, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
