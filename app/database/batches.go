package database

import (
	"database/sql"

	"amyza-admin/app/models"
)

func GetAllBatches(db *sql.DB) ([]*models.Batch, error) {
	query := `SELECT b.id, b.code, b.status, b.current_module, b.start_date, b.end_date,
			  b.created_at, b.updated_at, COUNT(s.id)
			  FROM batches b
			  LEFT JOIN students s ON s.batch_id = b.id AND s.is_active = true AND s.deleted_at IS NULL
			  WHERE b.deleted_at IS NULL
			  GROUP BY b.id
			  ORDER BY b.start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		batch := &models.Batch{}
		if err := rows.Scan(
			&batch.ID, &batch.Code, &batch.Status, &batch.CurrentModule,
			&batch.StartDate, &batch.EndDate, &batch.CreatedAt, &batch.UpdatedAt,
			&batch.StudentCount,
		); err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}
	return batches, rows.Err()
}

func GetBatchByID(db *sql.DB, batchID string) (*models.Batch, error) {
	batch := &models.Batch{}
	query := `SELECT id, code, status, current_module, start_date, end_date, created_at, updated_at
			  FROM batches WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, batchID).Scan(
		&batch.ID, &batch.Code, &batch.Status, &batch.CurrentModule,
		&batch.StartDate, &batch.EndDate, &batch.CreatedAt, &batch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func CreateBatch(db *sql.DB, batch *models.Batch) error {
	query := `INSERT INTO batches (id, code, status, current_module, start_date, end_date, created_at, updated_at)
			  VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		batch.Code, batch.Status, batch.CurrentModule, batch.StartDate, batch.EndDate,
	).Scan(&batch.ID, &batch.CreatedAt, &batch.UpdatedAt)
}

func UpdateBatch(db *sql.DB, batch *models.Batch) error {
	query := `UPDATE batches
			  SET code = $1, status = $2, current_module = $3, start_date = $4, end_date = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		batch.Code, batch.Status, batch.CurrentModule, batch.StartDate, batch.EndDate, batch.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteBatch(db *sql.DB, batchID string) error {
	query := `UPDATE batches SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, batchID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CountBatchesByStatus(db *sql.DB, status models.BatchStatus) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM batches WHERE status = $1 AND deleted_at IS NULL", status).Scan(&count)
	return count, err
}
