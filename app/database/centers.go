package database

import (
	"database/sql"

	"edcenter/app/models"
)

func GetAllCenters(db *sql.DB) ([]*models.Center, error) {
	query := `SELECT c.id, c.school_id, c.name, c.code, c.address, c.phone, c.is_active,
			  c.created_at, c.updated_at, s.name as school_name,
			  (SELECT COUNT(*) FROM students st WHERE st.center_id = c.id AND st.is_active = true AND st.deleted_at IS NULL) as student_count
			  FROM centers c
			  JOIN schools s ON c.school_id = s.id
			  WHERE c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []*models.Center
	for rows.Next() {
		c := &models.Center{}
		err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Code, &c.Address, &c.Phone,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.SchoolName, &c.StudentCount)
		if err != nil {
			continue
		}
		centers = append(centers, c)
	}
	return centers, nil
}

func GetCenterByID(db *sql.DB, centerID string) (*models.Center, error) {
	c := &models.Center{}
	query := `SELECT c.id, c.school_id, c.name, c.code, c.address, c.phone, c.is_active,
			  c.created_at, c.updated_at, s.name as school_name
			  FROM centers c
			  JOIN schools s ON c.school_id = s.id
			  WHERE c.id = $1 AND c.deleted_at IS NULL`

	err := db.QueryRow(query, centerID).Scan(&c.ID, &c.SchoolID, &c.Name, &c.Code, &c.Address,
		&c.Phone, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.SchoolName)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCenter(db *sql.DB, center *models.Center) error {
	query := `INSERT INTO centers (school_id, name, code, address, phone)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, center.SchoolID, center.Name, center.Code, center.Address, center.Phone).Scan(
		&center.ID, &center.CreatedAt, &center.UpdatedAt)
}

func UpdateCenter(db *sql.DB, center *models.Center) (int64, error) {
	query := `UPDATE centers SET name = $1, address = $2, phone = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`
	result, err := db.Exec(query, center.Name, center.Address, center.Phone, center.IsActive, center.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func DeleteCenter(db *sql.DB, centerID string) (int64, error) {
	result, err := db.Exec(`UPDATE centers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, centerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
