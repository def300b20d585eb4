package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	appctx "traso/internal/core/context"
	"traso/internal/core/id"
)

// CompressionAlgo specifies the compression algorithm used for a payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry represents a single audit log entry.
type AuditEntry struct {
	ID                id.ID           `db:"id"`
	EntityType        string          `db:"entity_type"`
	EntityID          id.ID           `db:"entity_id"`
	Action            string          `db:"action"`
	UserID            string          `db:"user_id"`
	Changes           json.RawMessage `db:"changes"`
	ChangesCompressed []byte          `db:"changes_compressed"`
	CompressionAlgo   CompressionAlgo `db:"compression_algo"`
	CreatedAt         time.Time       `db:"created_at"`
}

// AuditStore persists the change log of ledger mutations.
// Large payloads are zstd-compressed before insert.
// Implements ledger.Auditor.
type AuditStore struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewAuditStore creates a new audit store.
func NewAuditStore(txManager *TxManager) (*AuditStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditStore{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record logs an entity change. changes is marshalled to JSON.
func (s *AuditStore) Record(ctx context.Context, entityType string, entityID id.ID, action string, changes any) error {
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	entry := AuditEntry{
		ID:         id.New(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		UserID:     appctx.GetUserID(ctx),
		Changes:    changesJSON,
		CreatedAt:  time.Now().UTC(),
	}

	entry.CompressionAlgo = CompressionNone
	if len(entry.Changes) > s.compressThreshold {
		entry.ChangesCompressed = s.encoder.EncodeAll(entry.Changes, nil)
		entry.Changes = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_audit (
			id, entity_type, entity_id, action, user_id,
			changes, changes_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	querier := s.txManager.GetQuerier(ctx)
	_, err = querier.Exec(ctx, sql,
		entry.ID, entry.EntityType, entry.EntityID, entry.Action, entry.UserID,
		entry.Changes, entry.ChangesCompressed, entry.CompressionAlgo, entry.CreatedAt,
	)

	return err
}

// EntityHistory retrieves the audit trail for an entity, newest first.
// Compressed payloads are inflated before return.
func (s *AuditStore) EntityHistory(ctx context.Context, entityType string, entityID id.ID, limit int) ([]AuditEntry, error) {
	sql := `
		SELECT id, entity_type, entity_id, action, user_id,
		       changes, changes_compressed, compression_algo, created_at
		FROM sys_audit
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := s.txManager.GetQuerier(ctx).Query(ctx, sql, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.UserID,
			&e.Changes, &e.ChangesCompressed, &e.CompressionAlgo, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if e.CompressionAlgo == CompressionZstd && len(e.ChangesCompressed) > 0 {
			decompressed, err := s.decoder.DecodeAll(e.ChangesCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
			e.Changes = decompressed
			e.ChangesCompressed = nil
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
