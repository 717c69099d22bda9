package auth_repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/domain/auth"
	"orcado/internal/infrastructure/storage/postgres"
)

var _ auth.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implements auth.TokenRepository.
type TokenRepo struct {
	tm *postgres.TxManager
}

// NewTokenRepo creates a new token repository.
func NewTokenRepo(tm *postgres.TxManager) *TokenRepo {
	return &TokenRepo{tm: tm}
}

// SaveRefreshToken saves a refresh token.
func (r *TokenRepo) SaveRefreshToken(ctx context.Context, token *auth.RefreshToken) error {
	q := r.tm.GetQuerier(ctx)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::inet)
	`

	_, err := q.Exec(ctx, query,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt,
		token.CreatedAt, token.UserAgent, token.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken retrieves refresh token by hash.
func (r *TokenRepo) GetRefreshToken(ctx context.Context, tokenHash string) (*auth.RefreshToken, error) {
	q := r.tm.GetQuerier(ctx)

	query := `
		SELECT id, user_id, token_hash, expires_at, created_at, revoked_at, COALESCE(revoked_reason, '')
		FROM refresh_tokens WHERE token_hash = $1
	`

	var token auth.RefreshToken
	err := q.QueryRow(ctx, query, tokenHash).Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt,
		&token.CreatedAt, &token.RevokedAt, &token.RevokedReason,
	)
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("refresh token", "")
	}
	if err != nil {
		return nil, fmt.Errorf("query refresh token: %w", err)
	}
	return &token, nil
}

// RevokeRefreshToken revokes a single refresh token.
func (r *TokenRepo) RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error {
	q := r.tm.GetQuerier(ctx)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW(), revoked_reason = $1
		WHERE id = $2 AND revoked_at IS NULL
	`

	if _, err := q.Exec(ctx, query, reason, tokenID); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllUserTokens revokes all active tokens of a user.
func (r *TokenRepo) RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error {
	q := r.tm.GetQuerier(ctx)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW(), revoked_reason = $1
		WHERE user_id = $2 AND revoked_at IS NULL
	`

	if _, err := q.Exec(ctx, query, reason, userID); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

// CleanupExpiredTokens removes tokens expired more than 30 days ago.
func (r *TokenRepo) CleanupExpiredTokens(ctx context.Context) (int, error) {
	q := r.tm.GetQuerier(ctx)

	query := `DELETE FROM refresh_tokens WHERE expires_at < NOW() - INTERVAL '30 days'`

	result, err := q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("cleanup expired tokens: %w", err)
	}
	return int(result.RowsAffected()), nil
}
