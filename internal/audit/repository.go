package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

// Insert appends one audit row inside the caller's transaction so the audit
// trail commits or rolls back together with the change it describes.
func Insert(ctx context.Context, tx pgx.Tx, orderID *string, action, actor string, metadata any) error {
	var s *string
	if metadata != nil {
		b, _ := json.Marshal(metadata)
		str := string(b)
		s = &str
	}
	const q = `
INSERT INTO audit_logs (order_id, action, actor, metadata)
VALUES ($1, $2, $3, CAST($4 AS jsonb))
`
	_, err := tx.Exec(ctx, q, orderID, action, actor, s)
	return err
}
