package postgresql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/postplus/postplus_api/internal/domain"
)

const TableArt = "art"

var artColumns = []string{
	"id",
	"title",
	"description",
	"type",
	"category",
	"formats",
	"created_at",
	"updated_at",
}

type ArtsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewArtsRepository(pool *pgxpool.Pool) *ArtsRepository {
	return &ArtsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ArtsRepository) CreateArt(ctx context.Context, art *domain.Art) (*domain.Art, error) {
	now := time.Now().UTC()

	formats := art.Formats
	if formats == nil {
		formats = domain.Formats{}
	}

	return r.queryOne(ctx, r.qb.
		Insert(TableArt).
		Columns(artColumns...).
		Values(
			uuid.NewString(),
			art.Title,
			art.Description,
			art.Type,
			art.Category,
			formats,
			now,
			now,
		).
		Suffix(returning(artColumns)),
	)
}

func (r *ArtsRepository) Arts(ctx context.Context, filter domain.ArtFilter) ([]*domain.Art, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.artsQuery(filter).ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	arts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Art])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return arts, nil
}

func (r *ArtsRepository) artsQuery(filter domain.ArtFilter) sq.SelectBuilder {
	query := r.qb.
		Select(artColumns...).
		From(TableArt).
		OrderBy("created_at DESC")

	if filter.Type != "" {
		query = query.Where(sq.Eq{"type": filter.Type})
	}

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}

	return query
}

func (r *ArtsRepository) ArtByID(ctx context.Context, id string) (*domain.Art, error) {
	return r.queryOne(ctx, r.qb.
		Select(artColumns...).
		From(TableArt).
		Where(sq.Eq{"id": id}),
	)
}

func (r *ArtsRepository) UpdateArt(ctx context.Context, id string, patch *domain.ArtPatch) (*domain.Art, error) {
	query := r.qb.
		Update(TableArt).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(artColumns))

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}

	if patch.Description != nil {
		query = query.Set("description", *patch.Description)
	}

	if patch.Type != nil {
		query = query.Set("type", *patch.Type)
	}

	if patch.Category != nil {
		query = query.Set("category", *patch.Category)
	}

	if patch.Formats != nil {
		query = query.Set("formats", patch.Formats)
	}

	return r.queryOne(ctx, query)
}

// UpdateFormats replaces the whole formats mapping of an art.
func (r *ArtsRepository) UpdateFormats(ctx context.Context, id string, formats domain.Formats) (*domain.Art, error) {
	return r.UpdateArt(ctx, id, &domain.ArtPatch{Formats: formats})
}

func (r *ArtsRepository) DeleteArt(ctx context.Context, id string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableArt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("art %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *ArtsRepository) queryOne(ctx context.Context, query sq.Sqlizer) (*domain.Art, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	art, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Art])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return art, nil
}
