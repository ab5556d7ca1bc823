package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create courses table
CREATE TABLE IF NOT EXISTS courses (
    id INTEGER PRIMARY KEY,
    seq_no INTEGER NOT NULL DEFAULT 0,
    url VARCHAR(255) NOT NULL DEFAULT '',
    description VARCHAR(255) NOT NULL,
    long_description TEXT NOT NULL DEFAULT '',
    icon_url VARCHAR(512) NOT NULL DEFAULT '',
    course_list_icon VARCHAR(512) NOT NULL DEFAULT '',
    lessons_count INTEGER NOT NULL DEFAULT 0,
    category VARCHAR(50) NOT NULL DEFAULT '',
    promo BOOLEAN NOT NULL DEFAULT FALSE
);

-- Create lessons table
CREATE TABLE IF NOT EXISTS lessons (
    id INTEGER PRIMARY KEY,
    course_id INTEGER NOT NULL,
    seq_no INTEGER NOT NULL,
    description VARCHAR(255) NOT NULL,
    duration VARCHAR(20) NOT NULL DEFAULT '',
    FOREIGN KEY (course_id) REFERENCES courses(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS lessons_course_seq_idx ON lessons (course_id, seq_no);
`

// InitSchema creates the catalog tables if they do not exist yet.
func InitSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}
