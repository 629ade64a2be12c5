package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `INSERT INTO orgs (name, description, address, locale, admin_email, board_policy, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		org.Name, org.Description, org.Address, org.Locale, org.AdminEmail, org.BoardPolicy, time.Now()).Scan(&org.ID)
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	org := &domain.Organization{}
	query := `SELECT id, name, description, address, locale, admin_email, board_policy, created_on FROM orgs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &org.Description, &org.Address,
		&org.Locale, &org.AdminEmail, &org.BoardPolicy, &org.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, description, address, locale, admin_email, board_policy, created_on FROM orgs ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.Address,
			&org.Locale, &org.AdminEmail, &org.BoardPolicy, &org.CreatedOn); err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	query := `UPDATE orgs SET name = $1, description = $2, address = $3, locale = $4, admin_email = $5, board_policy = $6 WHERE id = $7`
	_, err := r.db.ExecContext(ctx, query,
		org.Name, org.Description, org.Address, org.Locale, org.AdminEmail, org.BoardPolicy, org.ID)
	return err
}
