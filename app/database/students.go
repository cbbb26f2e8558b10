package database

import (
	"database/sql"
	"fmt"
	"strings"

	"edcenter/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search       string
	Status       string
	CenterID     string
	ClassID      string
	CurriculumID string
	Gender       string
	SortBy       string
	SortOrder    string
	Limit        int
	Offset       int
}

const studentSelect = `SELECT s.id, s.student_code, s.center_id, s.class_id, s.curriculum_id,
		s.first_name, s.last_name, s.gender, s.date_of_birth,
		s.guardian_name, s.guardian_phone, s.guardian_email, s.address,
		s.is_active, s.created_at, s.updated_at,
		COALESCE(cl.name, '') as class_name,
		COALESCE(ce.name, '') as center_name,
		COALESCE(cu.name, '') as curriculum_name
		FROM students s
		LEFT JOIN classes cl ON s.class_id = cl.id
		LEFT JOIN centers ce ON s.center_id = ce.id
		LEFT JOIN curriculums cu ON s.curriculum_id = cu.id`

func scanStudent(row interface{ Scan(...interface{}) error }, s *models.Student) error {
	var gender sql.NullString
	err := row.Scan(&s.ID, &s.StudentCode, &s.CenterID, &s.ClassID, &s.CurriculumID,
		&s.FirstName, &s.LastName, &gender, &s.DateOfBirth,
		&s.GuardianName, &s.GuardianPhone, &s.GuardianEmail, &s.Address,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&s.ClassName, &s.CenterName, &s.CurriculumName)
	if err != nil {
		return err
	}
	s.Gender = models.Gender(gender.String)
	return nil
}

// GetStudentsWithFilters returns students matching the filters plus the total
// count before pagination.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argIndex))
		args = append(args, value)
		argIndex++
	}

	conditions = append(conditions, "s.deleted_at IS NULL")
	if filters.Status == "inactive" {
		conditions = append(conditions, "s.is_active = false")
	} else if filters.Status != "all" {
		conditions = append(conditions, "s.is_active = true")
	}
	if filters.CenterID != "" {
		addCondition("s.center_id = $%d", filters.CenterID)
	}
	if filters.ClassID != "" {
		addCondition("s.class_id = $%d", filters.ClassID)
	}
	if filters.CurriculumID != "" {
		addCondition("s.curriculum_id = $%d", filters.CurriculumID)
	}
	if filters.Gender != "" {
		addCondition("s.gender = $%d", filters.Gender)
	}
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(LOWER(s.student_code) LIKE $%d
			OR LOWER(s.first_name) LIKE $%d
			OR LOWER(s.last_name) LIKE $%d
			OR LOWER(s.first_name || ' ' || s.last_name) LIKE $%d
			OR LOWER(s.guardian_phone) LIKE $%d)`,
			argIndex, argIndex, argIndex, argIndex, argIndex))
		args = append(args, pattern)
		argIndex++
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	// Total count before pagination
	var totalCount int
	countQuery := "SELECT COUNT(*) FROM students s" + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	sortColumn := "s.student_code"
	switch filters.SortBy {
	case "name":
		sortColumn = "s.first_name"
	case "created_at":
		sortColumn = "s.created_at"
	}
	sortOrder := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query := studentSelect + where + fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortOrder)
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := scanStudent(rows, s); err != nil {
			continue
		}
		students = append(students, s)
	}
	return students, totalCount, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s := &models.Student{}
	query := studentSelect + ` WHERE s.id = $1 AND s.deleted_at IS NULL`
	if err := scanStudent(db.QueryRow(query, studentID), s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudentByCodeAndGuardianPhone looks a student up for the public parent
// portal. Both values must match for the lookup to succeed.
func GetStudentByCodeAndGuardianPhone(db *sql.DB, studentCode, guardianPhone string) (*models.Student, error) {
	s := &models.Student{}
	query := studentSelect + ` WHERE s.student_code = $1 AND s.guardian_phone = $2
		AND s.is_active = true AND s.deleted_at IS NULL`
	if err := scanStudent(db.QueryRow(query, studentCode, guardianPhone), s); err != nil {
		return nil, err
	}
	return s, nil
}

func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	students, _, err := GetStudentsWithFilters(db, StudentFilters{ClassID: classID})
	return students, err
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (student_code, center_id, class_id, curriculum_id,
			  first_name, last_name, gender, date_of_birth,
			  guardian_name, guardian_phone, guardian_email, address)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at, updated_at`
	var gender interface{}
	if student.Gender != "" {
		gender = string(student.Gender)
	}
	return db.QueryRow(query, student.StudentCode, student.CenterID, student.ClassID,
		student.CurriculumID, student.FirstName, student.LastName, gender, student.DateOfBirth,
		student.GuardianName, student.GuardianPhone, student.GuardianEmail, student.Address).Scan(
		&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func UpdateStudent(db *sql.DB, student *models.Student) (int64, error) {
	query := `UPDATE students SET class_id = $1, curriculum_id = $2, first_name = $3, last_name = $4,
			  gender = $5, date_of_birth = $6, guardian_name = $7, guardian_phone = $8,
			  guardian_email = $9, address = $10, is_active = $11, updated_at = NOW()
			  WHERE id = $12 AND deleted_at IS NULL`
	var gender interface{}
	if student.Gender != "" {
		gender = string(student.Gender)
	}
	result, err := db.Exec(query, student.ClassID, student.CurriculumID, student.FirstName,
		student.LastName, gender, student.DateOfBirth, student.GuardianName, student.GuardianPhone,
		student.GuardianEmail, student.Address, student.IsActive, student.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func DeleteStudent(db *sql.DB, studentID string) (int64, error) {
	result, err := db.Exec(`UPDATE students SET deleted_at = NOW(), is_active = false
						   WHERE id = $1 AND deleted_at IS NULL`, studentID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
