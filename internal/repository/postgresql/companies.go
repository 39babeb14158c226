package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/postplus/postplus_api/internal/domain"
)

const TableCompany = "company"

var companyColumns = []string{
	"id",
	"name",
	"email",
	"password",
	"cnpj",
	"street",
	"city",
	"state",
	"zip_code",
	"whatsapp",
	"logo_url",
	"created_at",
	"updated_at",
}

type CompaniesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewCompaniesRepository(pool *pgxpool.Pool) *CompaniesRepository {
	return &CompaniesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CompaniesRepository) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	now := time.Now().UTC()

	query := r.qb.
		Insert(TableCompany).
		Columns(companyColumns...).
		Values(
			uuid.NewString(),
			company.Name,
			company.Email,
			company.PasswordHash,
			company.CNPJ,
			company.Street,
			company.City,
			company.State,
			company.ZipCode,
			company.WhatsApp,
			company.LogoURL,
			now,
			now,
		).
		Suffix(returning(companyColumns))

	return r.queryOne(ctx, query)
}

func (r *CompaniesRepository) Companies(ctx context.Context) ([]*domain.Company, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(companyColumns...).
		From(TableCompany).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	companies, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Company])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return companies, nil
}

func (r *CompaniesRepository) CompanyByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.queryOne(ctx, r.qb.
		Select(companyColumns...).
		From(TableCompany).
		Where(sq.Eq{"id": id}),
	)
}

func (r *CompaniesRepository) CompanyByEmail(ctx context.Context, email string) (*domain.Company, error) {
	return r.queryOne(ctx, r.qb.
		Select(companyColumns...).
		From(TableCompany).
		Where(sq.Eq{"email": email}),
	)
}

func (r *CompaniesRepository) UpdateCompany(ctx context.Context, id string, patch *domain.CompanyPatch) (*domain.Company, error) {
	query := r.qb.
		Update(TableCompany).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(companyColumns))

	for _, field := range []struct {
		column string
		value  *string
	}{
		{"name", patch.Name},
		{"email", patch.Email},
		{"password", patch.PasswordHash},
		{"cnpj", patch.CNPJ},
		{"street", patch.Street},
		{"city", patch.City},
		{"state", patch.State},
		{"zip_code", patch.ZipCode},
		{"whatsapp", patch.WhatsApp},
	} {
		if field.value != nil {
			query = query.Set(field.column, *field.value)
		}
	}

	return r.queryOne(ctx, query)
}

func (r *CompaniesRepository) UpdateLogoURL(ctx context.Context, id, logoURL string) (*domain.Company, error) {
	return r.queryOne(ctx, r.qb.
		Update(TableCompany).
		Set("logo_url", logoURL).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(companyColumns)),
	)
}

func (r *CompaniesRepository) DeleteCompany(ctx context.Context, id string) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Delete(TableCompany).
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
		return fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *CompaniesRepository) queryOne(ctx context.Context, query sq.Sqlizer) (*domain.Company, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	company, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Company])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return company, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
