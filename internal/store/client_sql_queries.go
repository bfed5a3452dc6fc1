package store

// Session persistence queries for the client's local SQLite database. The
// CHECK constraint pins the table to a single row, so saving a session is
// always an upsert of row 1.
const (
	createSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id            INTEGER PRIMARY KEY CHECK (id = 1),
			user_id       INTEGER NOT NULL,
			first_name    TEXT    NOT NULL,
			last_name     TEXT    NOT NULL,
			email_address TEXT    NOT NULL,
			password      TEXT    NOT NULL,
			created_at    TIMESTAMP NOT NULL,
			expires_at    TIMESTAMP NOT NULL
		)`

	upsertSession = `
		INSERT INTO session (id, user_id, first_name, last_name, email_address, password, created_at, expires_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email_address = excluded.email_address,
			password = excluded.password,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at`

	selectSession = `
		SELECT user_id, first_name, last_name, email_address, password, created_at, expires_at
		FROM session
		WHERE id = 1`

	deleteSession = `DELETE FROM session WHERE id = 1`
)
