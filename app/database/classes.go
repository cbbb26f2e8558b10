package database

import (
	"database/sql"

	"edcenter/app/models"
)

func GetClassesByCenter(db *sql.DB, centerID string) ([]*models.Class, error) {
	query := `SELECT c.id, c.center_id, c.name, c.code, c.format, c.teacher_id, c.is_active,
			  c.created_at, c.updated_at,
			  (SELECT COUNT(*) FROM students st WHERE st.class_id = c.id AND st.is_active = true AND st.deleted_at IS NULL) as student_count
			  FROM classes c
			  WHERE c.center_id = $1 AND c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClasses(rows)
}

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.center_id, c.name, c.code, c.format, c.teacher_id, c.is_active,
			  c.created_at, c.updated_at,
			  (SELECT COUNT(*) FROM students st WHERE st.class_id = c.id AND st.is_active = true AND st.deleted_at IS NULL) as student_count
			  FROM classes c
			  WHERE c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClasses(rows)
}

func scanClasses(rows *sql.Rows) ([]*models.Class, error) {
	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		var format string
		err := rows.Scan(&c.ID, &c.CenterID, &c.Name, &c.Code, &format, &c.TeacherID,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.StudentCount)
		if err != nil {
			continue
		}
		c.Format = models.ClassFormat(format)
		classes = append(classes, c)
	}
	return classes, nil
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	c := &models.Class{}
	var format string
	query := `SELECT id, center_id, name, code, format, teacher_id, is_active, created_at, updated_at
			  FROM classes WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, classID).Scan(&c.ID, &c.CenterID, &c.Name, &c.Code, &format,
		&c.TeacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Format = models.ClassFormat(format)
	return c, nil
}

func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (center_id, name, code, format, teacher_id)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, class.CenterID, class.Name, class.Code, string(class.Format), class.TeacherID).Scan(
		&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func UpdateClass(db *sql.DB, class *models.Class) (int64, error) {
	query := `UPDATE classes SET name = $1, format = $2, teacher_id = $3, is_active = $4, updated_at = NOW()
			  WHERE id = $5 AND deleted_at IS NULL`
	result, err := db.Exec(query, class.Name, string(class.Format), class.TeacherID, class.IsActive, class.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func DeleteClass(db *sql.DB, classID string) (int64, error) {
	result, err := db.Exec(`UPDATE classes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, classID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
