package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/postplus/postplus_api/internal/domain"
)

const TableDownload = "download"

type DownloadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewDownloadsRepository(pool *pgxpool.Pool) *DownloadsRepository {
	return &DownloadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateDownload inserts a download row. The returned download has no art attached.
func (r *DownloadsRepository) CreateDownload(ctx context.Context, artID, companyID string) (*domain.Download, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableDownload).
		Columns("id", "art_id", "company_id", "created_at").
		Values(uuid.NewString(), artID, companyID, time.Now().UTC()).
		Suffix("RETURNING id, art_id, company_id, created_at").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	var d domain.Download
	if err := db.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.ArtID, &d.CompanyID, &d.CreatedAt); err != nil {
		return nil, scanRowError(err)
	}

	return &d, nil
}

// DownloadsByCompany returns the company's downloads joined with their arts, newest first.
func (r *DownloadsRepository) DownloadsByCompany(ctx context.Context, companyID string) ([]*domain.Download, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.joinedQuery().
		Where(sq.Eq{"d.company_id": companyID}).
		OrderBy("d.created_at DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	downloads, err := pgx.CollectRows(rows, scanJoinedDownload)
	if err != nil {
		return nil, collectRowsError(err)
	}

	return downloads, nil
}

// DownloadByID looks a download up within the scope of one company.
func (r *DownloadsRepository) DownloadByID(ctx context.Context, id, companyID string) (*domain.Download, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.joinedQuery().
		Where(sq.Eq{"d.id": id, "d.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	download, err := pgx.CollectExactlyOneRow(rows, scanJoinedDownload)
	if err != nil {
		return nil, collectRowsError(err)
	}

	return download, nil
}

func (r *DownloadsRepository) joinedQuery() sq.SelectBuilder {
	return r.qb.
		Select(
			"d.id",
			"d.art_id",
			"d.company_id",
			"d.created_at",
			"a.id",
			"a.title",
			"a.description",
			"a.type",
			"a.category",
			"a.formats",
			"a.created_at",
			"a.updated_at",
		).
		From(TableDownload + " d").
		Join(TableArt + " a ON a.id = d.art_id")
}

func scanJoinedDownload(row pgx.CollectableRow) (*domain.Download, error) {
	var (
		d   domain.Download
		art domain.Art
	)

	err := row.Scan(
		&d.ID,
		&d.ArtID,
		&d.CompanyID,
		&d.CreatedAt,
		&art.ID,
		&art.Title,
		&art.Description,
		&art.Type,
		&art.Category,
		&art.Formats,
		&art.CreatedAt,
		&art.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Art = &art

	return &d, nil
}
