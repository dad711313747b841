package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"vitrine/internal/domain/catalog"
)

// CompressionAlgo specifies the compression algorithm used for stored query
// text.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// RunLogEntry is one persisted generation run.
type RunLogEntry struct {
	ID              uuid.UUID       `db:"id"`
	QueryText       []byte          `db:"query_text"`
	QueryCompressed []byte          `db:"query_compressed"`
	CompressionAlgo CompressionAlgo `db:"compression_algo"`
	RowCount        int             `db:"row_count"`
	DurationMs      int64           `db:"duration_ms"`
	Failed          bool            `db:"failed"`
	StartedAt       time.Time       `db:"started_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

// RunLog persists generation runs with the composed query text, compressed
// when large. It implements catalog.RunRecorder.
type RunLog struct {
	pool              *Pool
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewRunLog creates a run log writer.
func NewRunLog(pool *Pool) (*RunLog, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &RunLog{
		pool:              pool,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

// Record persists one generation run.
func (l *RunLog) Record(ctx context.Context, run catalog.Run) error {
	entry := RunLogEntry{
		ID:              uuid.New(),
		QueryText:       []byte(run.SQL),
		CompressionAlgo: CompressionNone,
		RowCount:        run.RowCount,
		DurationMs:      run.Duration.Milliseconds(),
		Failed:          run.Failed,
		StartedAt:       run.StartedAt,
		CreatedAt:       time.Now().UTC(),
	}

	if len(entry.QueryText) > l.compressThreshold {
		entry.QueryCompressed = l.encoder.EncodeAll(entry.QueryText, nil)
		entry.QueryText = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_generation_log (
			id, query_text, query_compressed, compression_algo,
			row_count, duration_ms, failed, started_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := l.pool.Exec(ctx, sql,
		entry.ID, entry.QueryText, entry.QueryCompressed, entry.CompressionAlgo,
		entry.RowCount, entry.DurationMs, entry.Failed, entry.StartedAt, entry.CreatedAt,
	)
	return err
}

// Recent retrieves the latest runs, newest first, with query text
// decompressed.
func (l *RunLog) Recent(ctx context.Context, limit int) ([]RunLogEntry, error) {
	sql := `
		SELECT id, query_text, query_compressed, compression_algo,
			   row_count, duration_ms, failed, started_at, created_at
		FROM sys_generation_log
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := l.pool.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("query run log: %w", err)
	}
	defer rows.Close()

	var entries []RunLogEntry
	for rows.Next() {
		var e RunLogEntry
		err := rows.Scan(
			&e.ID, &e.QueryText, &e.QueryCompressed, &e.CompressionAlgo,
			&e.RowCount, &e.DurationMs, &e.Failed, &e.StartedAt, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run log entry: %w", err)
		}

		if e.CompressionAlgo == CompressionZstd && len(e.QueryCompressed) > 0 {
			decompressed, err := l.decoder.DecodeAll(e.QueryCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress query text: %w", err)
			}
			e.QueryText = decompressed
			e.QueryCompressed = nil
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
