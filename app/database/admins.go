package database

import (
	"database/sql"
	"time"

	"amyza-admin/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetAdminByEmail(db *sql.DB, email string) (*models.AdminProfile, error) {
	admin := &models.AdminProfile{}
	query := `SELECT id, email, password, first_name, last_name, phone, role, is_active, created_at, updated_at
			  FROM admins WHERE email = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&admin.ID, &admin.Email, &admin.Password, &admin.FirstName,
		&admin.LastName, &admin.Phone, &admin.Role, &admin.IsActive,
		&admin.CreatedAt, &admin.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return admin, nil
}

func GetAdminByID(db *sql.DB, adminID string) (*models.AdminProfile, error) {
	admin := &models.AdminProfile{}
	query := `SELECT id, email, password, first_name, last_name, phone, role, is_active, created_at, updated_at
			  FROM admins WHERE id = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, adminID).Scan(
		&admin.ID, &admin.Email, &admin.Password, &admin.FirstName,
		&admin.LastName, &admin.Phone, &admin.Role, &admin.IsActive,
		&admin.CreatedAt, &admin.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateAdmin creates a new console account with a hashed password.
func CreateAdmin(db *sql.DB, admin *models.AdminProfile) error {
	hashedPassword, err := hashPassword(admin.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO admins (id, email, password, first_name, last_name, phone, role, is_active, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, admin.Email, hashedPassword, admin.FirstName, admin.LastName, admin.Phone, admin.Role).Scan(
		&admin.ID, &admin.CreatedAt, &admin.UpdatedAt,
	)
}

func GetAllAdmins(db *sql.DB) ([]*models.AdminProfile, error) {
	query := `SELECT id, email, first_name, last_name, phone, role, is_active, created_at, updated_at
			  FROM admins WHERE deleted_at IS NULL ORDER BY created_at ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.AdminProfile
	for rows.Next() {
		admin := &models.AdminProfile{}
		if err := rows.Scan(
			&admin.ID, &admin.Email, &admin.FirstName, &admin.LastName,
			&admin.Phone, &admin.Role, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt,
		); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// UpdateAdminRole changes an account's role tag. Roles only change through
// this explicit mutation, never as a side effect of a read.
func UpdateAdminRole(db *sql.DB, adminID, role string) error {
	query := `UPDATE admins SET role = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`
	_, err := db.Exec(query, role, adminID)
	return err
}

func UpdateAdminPassword(db *sql.DB, adminID, password string) error {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return err
	}
	query := `UPDATE admins SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err = db.Exec(query, hashedPassword, adminID)
	return err
}

func DeactivateAdmin(db *sql.DB, adminID string, now time.Time) error {
	query := `UPDATE admins SET is_active = false, deleted_at = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, now, adminID)
	return err
}
