package catalog

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Record is one device's price catalog. DeviceID is the catalog slug, e.g.
// "apple-iphone-13".
type Record struct {
	ID        string          `json:"id"`
	DeviceID  string          `json:"deviceId"`
	Config    json.RawMessage `json:"config"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

func (r *Repository) Upsert(ctx context.Context, deviceID string, cfg json.RawMessage) (*Record, error) {
	const q = `
INSERT INTO device_catalogs (device_id, config)
VALUES ($1, $2)
ON CONFLICT (device_id) DO UPDATE SET
  config = EXCLUDED.config,
  updated_at = NOW()
RETURNING id, device_id, config, created_at::text, updated_at::text
`
	rec := &Record{}
	if err := r.db.QueryRow(ctx, q, deviceID, cfg).Scan(
		&rec.ID, &rec.DeviceID, &rec.Config, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Repository) Get(ctx context.Context, deviceID string) (*Record, error) {
	const q = `
SELECT id, device_id, config, created_at::text, updated_at::text
FROM device_catalogs
WHERE device_id = $1
`
	rec := &Record{}
	if err := r.db.QueryRow(ctx, q, deviceID).Scan(
		&rec.ID, &rec.DeviceID, &rec.Config, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *Repository) List(ctx context.Context) ([]Record, error) {
	const q = `
SELECT id, device_id, config, created_at::text, updated_at::text
FROM device_catalogs
ORDER BY updated_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.DeviceID, &rec.Config, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Load fetches and validates a device's catalog config in one step.
func (r *Repository) Load(ctx context.Context, deviceID string) (Config, error) {
	rec, err := r.Get(ctx, deviceID)
	if err != nil {
		return Config{}, err
	}
	return ParseAndValidate(rec.Config)
}
