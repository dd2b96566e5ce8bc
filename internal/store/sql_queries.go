package store

const (
	upsertRecord = `
		INSERT INTO records (name, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP;`

	getRecord = `
		SELECT value
		FROM records
		WHERE name = $1;`

	deleteRecord = `
		DELETE FROM records
		WHERE name = $1;`

	deleteAllRecords = `
		DELETE FROM records;`
)
