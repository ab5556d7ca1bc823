package db

import (
	"database/sql"
	"fmt"
)

// SeedData loads the fixture catalog. Rows that already exist are left
// untouched, so it is safe to run on every start.
func SeedData(db *sql.DB) error {
	// Start a transaction
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	for _, c := range SeedCourses() {
		_, err = tx.Exec(`
			INSERT INTO courses (id, seq_no, url, description, long_description, icon_url, course_list_icon, lessons_count, category, promo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT DO NOTHING`,
			c.ID, c.SeqNo, c.URL, c.Titles.Description, c.Titles.LongDescription,
			c.IconURL, c.CourseListIcon, c.LessonsCount, c.Category, c.Promo)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding courses: %w", err)
		}
	}

	for _, l := range SeedLessons() {
		_, err = tx.Exec(`
			INSERT INTO lessons (id, course_id, seq_no, description, duration)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT DO NOTHING`,
			l.ID, l.CourseID, l.SeqNo, l.Description, l.Duration)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding lessons: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
