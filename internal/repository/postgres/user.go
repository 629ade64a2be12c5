package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, phone_number, password_hash, name, locale, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		user.Email, user.PhoneNumber, user.PasswordHash, user.Name, user.Locale, time.Now()).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, email, phone_number, password_hash, name, locale, created_on FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, phone_number, password_hash, name, locale, created_on FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PhoneNumber, &user.PasswordHash, &user.Name, &user.Locale, &user.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) AddUserToOrg(ctx context.Context, uo *domain.UserOrg) error {
	query := `INSERT INTO user_orgs (user_id, org_id, joined_on, status, role) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, uo.UserID, uo.OrgID, uo.JoinedOn, uo.Status, uo.Role)
	return err
}

func (r *userRepository) GetUserOrg(ctx context.Context, userID, orgID int32) (*domain.UserOrg, error) {
	uo := &domain.UserOrg{}
	query := `SELECT user_id, org_id, joined_on, status, role FROM user_orgs WHERE user_id = $1 AND org_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, orgID).Scan(&uo.UserID, &uo.OrgID, &uo.JoinedOn, &uo.Status, &uo.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return uo, nil
}

func (r *userRepository) UpdateUserOrg(ctx context.Context, uo *domain.UserOrg) error {
	query := `UPDATE user_orgs SET status = $1, role = $2 WHERE user_id = $3 AND org_id = $4`
	_, err := r.db.ExecContext(ctx, query, uo.Status, uo.Role, uo.UserID, uo.OrgID)
	return err
}

// ListBoardMembers returns the active ADMIN and BOARD rows for an org.
// This is the live roster behind every threshold evaluation.
func (r *userRepository) ListBoardMembers(ctx context.Context, orgID int32) ([]domain.User, []domain.UserOrg, error) {
	query := `SELECT u.id, u.email, u.phone_number, u.password_hash, u.name, u.locale, u.created_on,
	                 uo.user_id, uo.org_id, uo.joined_on, uo.status, uo.role
	          FROM users u
	          JOIN user_orgs uo ON uo.user_id = u.id
	          WHERE uo.org_id = $1 AND uo.status = 'ACTIVE' AND uo.role IN ('ADMIN', 'BOARD')
	          ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var users []domain.User
	var uos []domain.UserOrg
	for rows.Next() {
		var u domain.User
		var uo domain.UserOrg
		if err := rows.Scan(&u.ID, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Name, &u.Locale, &u.CreatedOn,
			&uo.UserID, &uo.OrgID, &uo.JoinedOn, &uo.Status, &uo.Role); err != nil {
			return nil, nil, err
		}
		users = append(users, u)
		uos = append(uos, uo)
	}
	return users, uos, rows.Err()
}
