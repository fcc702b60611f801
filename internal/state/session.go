package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/mgirard/etch/internal/db"
)

// Session holds the editor inputs worth restoring on the next run.
type Session struct {
	LastFolder        string
	IncludeSubfolders bool
}

func getSession(db *sql.DB) (*Session, error) {
	row := db.QueryRow(`
		SELECT last_folder, include_subfolders FROM session WHERE id = 1
	`)

	var s Session
	var folder sql.NullString
	var subfolders int

	err := row.Scan(&folder, &subfolders)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s.LastFolder = dbutil.NullStringValue(folder)
	s.IncludeSubfolders = subfolders != 0

	return &s, nil
}

func saveSession(db *sql.DB, s Session) error {
	subfolders := 0
	if s.IncludeSubfolders {
		subfolders = 1
	}

	_, err := db.Exec(`
		INSERT INTO session (id, last_folder, include_subfolders)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_folder = excluded.last_folder,
			include_subfolders = excluded.include_subfolders
	`, s.LastFolder, subfolders)

	return err
}
