package database

import (
	"database/sql"

	"edcenter/app/models"
)

func GetAllCurriculums(db *sql.DB) ([]*models.Curriculum, error) {
	query := `SELECT c.id, c.name, c.description, c.fees, c.duration_months,
			  c.classes_per_installment_weekday, c.classes_per_installment_weekend,
			  c.is_active, c.created_at, c.updated_at,
			  (SELECT COUNT(*) FROM students st WHERE st.curriculum_id = c.id AND st.is_active = true AND st.deleted_at IS NULL) as enrolled_count
			  FROM curriculums c
			  WHERE c.deleted_at IS NULL
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var curriculums []*models.Curriculum
	for rows.Next() {
		c := &models.Curriculum{}
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Fees, &c.DurationMonths,
			&c.ClassesPerInstallmentWeekday, &c.ClassesPerInstallmentWeekend,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.EnrolledCount)
		if err != nil {
			continue
		}
		curriculums = append(curriculums, c)
	}
	return curriculums, nil
}

func GetCurriculumByID(db *sql.DB, curriculumID string) (*models.Curriculum, error) {
	c := &models.Curriculum{}
	query := `SELECT id, name, description, fees, duration_months,
			  classes_per_installment_weekday, classes_per_installment_weekend,
			  is_active, created_at, updated_at
			  FROM curriculums WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, curriculumID).Scan(&c.ID, &c.Name, &c.Description, &c.Fees,
		&c.DurationMonths, &c.ClassesPerInstallmentWeekday, &c.ClassesPerInstallmentWeekend,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCurriculum(db *sql.DB, curriculum *models.Curriculum) error {
	query := `INSERT INTO curriculums (name, description, fees, duration_months,
			  classes_per_installment_weekday, classes_per_installment_weekend)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, curriculum.Name, curriculum.Description, curriculum.Fees,
		curriculum.DurationMonths, curriculum.ClassesPerInstallmentWeekday,
		curriculum.ClassesPerInstallmentWeekend).Scan(
		&curriculum.ID, &curriculum.CreatedAt, &curriculum.UpdatedAt)
}

func UpdateCurriculum(db *sql.DB, curriculum *models.Curriculum) (int64, error) {
	query := `UPDATE curriculums SET name = $1, description = $2, fees = $3, duration_months = $4,
			  classes_per_installment_weekday = $5, classes_per_installment_weekend = $6,
			  is_active = $7, updated_at = NOW()
			  WHERE id = $8 AND deleted_at IS NULL`
	result, err := db.Exec(query, curriculum.Name, curriculum.Description, curriculum.Fees,
		curriculum.DurationMonths, curriculum.ClassesPerInstallmentWeekday,
		curriculum.ClassesPerInstallmentWeekend, curriculum.IsActive, curriculum.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func DeleteCurriculum(db *sql.DB, curriculumID string) (int64, error) {
	result, err := db.Exec(`UPDATE curriculums SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, curriculumID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
