package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/SadatRiyad/BB-Vote-Server/entity"

	"github.com/jmoiron/sqlx"
)

// UserRepository interface defines user data operations
type UserRepository interface {
	Create(user *entity.User) (*entity.User, error)
	GetByID(id int) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(page, pageSize int, search string) ([]entity.User, int, error)
	SetRole(id int, role string) error
	SetPremium(id int, premium bool) error
	Delete(id int) error
	UpdateLastLogin(email string) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user
func (r *userRepository) Create(user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, name, role, is_premium, registered_at, last_login_at, is_active)
		VALUES (:email, :name, :role, :is_premium, :registered_at, :last_login_at, :is_active)
		RETURNING id, email, name, role, is_premium, registered_at, last_login_at, is_active
	`

	now := time.Now()
	user.RegisteredAt = now
	user.LastLoginAt = &now // last_login_at starts equal to registered_at
	user.IsActive = true
	if user.Role == "" {
		user.Role = entity.RoleUser
	}

	rows, err := r.db.NamedQuery(query, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created user")
	}

	var createdUser entity.User
	if err := rows.StructScan(&createdUser); err != nil {
		return nil, fmt.Errorf("failed to scan created user: %w", err)
	}

	return &createdUser, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(id int) (*entity.User, error) {
	query := `
		SELECT id, email, name, role, is_premium, registered_at, last_login_at, is_active
		FROM users
		WHERE id = $1 AND is_active = TRUE
	`

	var user entity.User
	err := r.db.Get(&user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, name, role, is_premium, registered_at, last_login_at, is_active
		FROM users
		WHERE email = $1 AND is_active = TRUE
	`

	var user entity.User
	err := r.db.Get(&user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// List retrieves paginated users with optional search over name and email
func (r *userRepository) List(page, pageSize int, search string) ([]entity.User, int, error) {
	offset := (page - 1) * pageSize

	whereClause := "WHERE is_active = TRUE"
	args := []interface{}{}
	argIndex := 1

	if search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+strings.ToLower(search)+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users %s", whereClause)
	var total int
	err := r.db.Get(&total, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, email, name, role, is_premium, registered_at, last_login_at, is_active
		FROM users
		%s
		ORDER BY registered_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)

	args = append(args, pageSize, offset)

	var users []entity.User
	err = r.db.Select(&users, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// SetRole updates a user's role
func (r *userRepository) SetRole(id int, role string) error {
	query := `UPDATE users SET role = $2 WHERE id = $1 AND is_active = TRUE`

	result, err := r.db.Exec(query, id, role)
	if err != nil {
		return fmt.Errorf("failed to set user role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

// SetPremium updates a user's premium flag
func (r *userRepository) SetPremium(id int, premium bool) error {
	query := `UPDATE users SET is_premium = $2 WHERE id = $1 AND is_active = TRUE`

	result, err := r.db.Exec(query, id, premium)
	if err != nil {
		return fmt.Errorf("failed to set user premium flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

// Delete removes a user
func (r *userRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login timestamp for a user
func (r *userRepository) UpdateLastLogin(email string) error {
	query := `
		UPDATE users
		SET last_login_at = CURRENT_TIMESTAMP
		WHERE email = $1 AND is_active = TRUE
	`

	result, err := r.db.Exec(query, email)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}
