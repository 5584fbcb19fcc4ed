package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateVideos, downCreateVideos)
}

func upCreateVideos(ctx context.Context, tx *sql.Tx) error {
	createVideosTable := `
	CREATE TABLE videos (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		public_id VARCHAR(255) NOT NULL UNIQUE,
		original_size BIGINT NOT NULL,
		compressed_size BIGINT,
		duration DOUBLE PRECISION,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.ExecContext(ctx, createVideosTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}
	return nil
}

func downCreateVideos(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS videos;"); err != nil {
		return fmt.Errorf("could not drop videos table: %w", err)
	}
	return nil
}
