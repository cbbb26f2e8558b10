package database

import (
	"database/sql"

	"edcenter/app/models"
)

func GetAllSchools(db *sql.DB) ([]*models.School, error) {
	query := `SELECT s.id, s.name, s.code, s.address, s.phone, s.is_active, s.created_at, s.updated_at,
			  (SELECT COUNT(*) FROM centers c WHERE c.school_id = s.id AND c.deleted_at IS NULL) as center_count
			  FROM schools s
			  WHERE s.deleted_at IS NULL
			  ORDER BY s.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		s := &models.School{}
		err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Address, &s.Phone, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt, &s.CenterCount)
		if err != nil {
			continue
		}
		schools = append(schools, s)
	}
	return schools, nil
}

func GetSchoolByID(db *sql.DB, schoolID string) (*models.School, error) {
	s := &models.School{}
	query := `SELECT id, name, code, address, phone, is_active, created_at, updated_at
			  FROM schools WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, schoolID).Scan(&s.ID, &s.Name, &s.Code, &s.Address, &s.Phone,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSchool(db *sql.DB, school *models.School) error {
	query := `INSERT INTO schools (name, code, address, phone)
			  VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, school.Name, school.Code, school.Address, school.Phone).Scan(
		&school.ID, &school.CreatedAt, &school.UpdatedAt)
}

func UpdateSchool(db *sql.DB, school *models.School) (int64, error) {
	query := `UPDATE schools SET name = $1, address = $2, phone = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`
	result, err := db.Exec(query, school.Name, school.Address, school.Phone, school.IsActive, school.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func DeleteSchool(db *sql.DB, schoolID string) (int64, error) {
	result, err := db.Exec(`UPDATE schools SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, schoolID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func GetCentersBySchool(db *sql.DB, schoolID string) ([]*models.Center, error) {
	query := `SELECT c.id, c.school_id, c.name, c.code, c.address, c.phone, c.is_active,
			  c.created_at, c.updated_at,
			  (SELECT COUNT(*) FROM students st WHERE st.center_id = c.id AND st.is_active = true AND st.deleted_at IS NULL) as student_count
			  FROM centers c
			  WHERE c.school_id = $1 AND c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []*models.Center
	for rows.Next() {
		c := &models.Center{}
		err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Code, &c.Address, &c.Phone,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.StudentCount)
		if err != nil {
			continue
		}
		centers = append(centers, c)
	}
	return centers, nil
}
