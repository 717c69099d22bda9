package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"orcado/internal/core/id"
	"orcado/internal/domain/budget"
)

// CompressionAlgo specifies the compression algorithm used for a history row.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// Payloads above this size are compressed before storage.
const compressThreshold = 10 * 1024

var _ budget.HistoryStore = (*BudgetHistoryStore)(nil)

// BudgetHistoryStore persists budget history entries. Large change payloads
// (duplicated budgets carry full line snapshots) are zstd-compressed.
type BudgetHistoryStore struct {
	tm      *TxManager
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewBudgetHistoryStore creates a new history store.
func NewBudgetHistoryStore(tm *TxManager) (*BudgetHistoryStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &BudgetHistoryStore{
		tm:      tm,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Append records a history entry.
func (s *BudgetHistoryStore) Append(ctx context.Context, entry budget.HistoryEntry) error {
	changesJSON, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	algo := CompressionNone
	var compressed []byte
	if len(changesJSON) > compressThreshold {
		compressed = s.encoder.EncodeAll(changesJSON, nil)
		changesJSON = nil
		algo = CompressionZstd
	}

	sql := `
		INSERT INTO doc_budget_history (
			id, budget_id, action, changes, changes_compressed,
			compression_algo, changed_by, change_reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = s.tm.GetQuerier(ctx).Exec(ctx, sql,
		entry.ID, entry.BudgetID, entry.Action,
		changesJSON, compressed, algo,
		entry.ChangedBy, entry.ChangeReason, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

// ListByBudget retrieves history for a budget, newest first.
func (s *BudgetHistoryStore) ListByBudget(ctx context.Context, budgetID id.ID, limit int) ([]budget.HistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	sql := `
		SELECT id, budget_id, action, changes, changes_compressed,
			   compression_algo, changed_by, COALESCE(change_reason, ''), created_at
		FROM doc_budget_history
		WHERE budget_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.tm.GetQuerier(ctx).Query(ctx, sql, budgetID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []budget.HistoryEntry
	for rows.Next() {
		var (
			e          budget.HistoryEntry
			changes    []byte
			compressed []byte
			algo       CompressionAlgo
		)
		err := rows.Scan(
			&e.ID, &e.BudgetID, &e.Action, &changes, &compressed,
			&algo, &e.ChangedBy, &e.ChangeReason, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}

		if algo == CompressionZstd && len(compressed) > 0 {
			changes, err = s.decoder.DecodeAll(compressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress changes: %w", err)
			}
		}
		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &e.Changes); err != nil {
				return nil, fmt.Errorf("unmarshal changes: %w", err)
			}
		}

		entries = append(entries, e)
	}
	return entries, rows.Err()
}
