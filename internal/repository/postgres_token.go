package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/tundeojo/learnly-api/internal/domain"
)

// Token writes always ride in the transaction of the user change that
// produced them, so they are tx-scoped helpers rather than a repository.

func insertToken(ctx context.Context, tx pgx.Tx, token *domain.Token) error {
	query := `INSERT INTO tokens (hash, user_id, expiry, scope)
			VALUES($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, token.Hash, token.UserId, token.Expiry, token.Scope)

	return err
}

func deleteTokensForUser(ctx context.Context, tx pgx.Tx, tokenScope string, userID int) error {
	query := `DELETE FROM tokens WHERE scope = $1 AND user_id = $2`

	_, err := tx.Exec(ctx, query, tokenScope, userID)

	return err
}
