package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"medmcq/internal/domain"
	"medmcq/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// Column aliases are quoted so Oracle returns lower-case names that match
// the db tags on models.Record.
const recordColumns = `id AS "id", display_name AS "display_name", topic AS "topic", raw_text AS "raw_text",
	content AS "content", rating AS "rating", model_name AS "model_name", reasoning AS "reasoning",
	reasoning_effort AS "reasoning_effort", created_at AS "created_at", updated_at AS "updated_at"`

// sqlxRecordRepository implements domain.RecordRepository using sqlx.
type sqlxRecordRepository struct {
	db *sqlx.DB
}

// NewSQLXRecordRepository creates a new instance of sqlxRecordRepository.
func NewSQLXRecordRepository(db *sqlx.DB) domain.RecordRepository {
	return &sqlxRecordRepository{db: db}
}

func toModelRecord(r *domain.Record) *models.Record {
	if r == nil {
		return nil
	}
	return &models.Record{
		ID:              r.ID,
		Name:            r.Name,
		Topic:           r.Topic,
		RawText:         r.RawText,
		Content:         models.ContentJSON(r.Content),
		Rating:          r.Rating,
		Model:           sql.NullString{String: r.Model, Valid: r.Model != ""},
		Reasoning:       sql.NullString{String: r.Reasoning, Valid: r.Reasoning != ""},
		ReasoningEffort: string(r.ReasoningEffort),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toDomainRecord(m *models.Record) *domain.Record {
	if m == nil {
		return nil
	}
	return &domain.Record{
		ID:              m.ID,
		Name:            m.Name,
		Topic:           m.Topic,
		RawText:         m.RawText,
		Content:         domain.ParsedContent(m.Content),
		Rating:          m.Rating,
		Model:           m.Model.String,
		Reasoning:       m.Reasoning.String,
		ReasoningEffort: domain.ReasoningEffort(m.ReasoningEffort),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// Create inserts a new record. The caller assigns the ID.
func (r *sqlxRecordRepository) Create(ctx context.Context, record *domain.Record) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}
	m := toModelRecord(record)

	query := r.db.Rebind(`INSERT INTO records
		(id, display_name, topic, raw_text, content, rating, model_name, reasoning, reasoning_effort, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Topic, m.RawText, m.Content, m.Rating, m.Model, m.Reasoning, m.ReasoningEffort, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by its ID.
func (r *sqlxRecordRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	var m models.Record
	query := r.db.Rebind(`SELECT ` + recordColumns + ` FROM records WHERE id = ?`)

	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by id: %w", err)
	}
	return toDomainRecord(&m), nil
}

// List returns the records matching the filter, newest first.
func (r *sqlxRecordRepository) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if topic := strings.TrimSpace(filter.Topic); topic != "" {
		conditions = append(conditions, "LOWER(topic) LIKE ?")
		args = append(args, "%"+strings.ToLower(topic)+"%")
	}
	if filter.MinRating > 0 {
		conditions = append(conditions, "rating >= ?")
		args = append(args, filter.MinRating)
	}
	if len(filter.IDs) > 0 {
		conditions = append(conditions, "id IN (?)")
		args = append(args, filter.IDs)
	}

	query := `SELECT ` + recordColumns + ` FROM records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	if len(filter.IDs) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to expand record id list: %w", err)
		}
	}
	query = r.db.Rebind(query)

	var rows []models.Record
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*domain.Record, 0, len(rows))
	for i := range rows {
		records = append(records, toDomainRecord(&rows[i]))
	}
	return records, nil
}

// Update rewrites the editable fields of a record.
func (r *sqlxRecordRepository) Update(ctx context.Context, record *domain.Record) (bool, error) {
	record.UpdatedAt = time.Now()
	m := toModelRecord(record)

	query := r.db.Rebind(`UPDATE records SET
		display_name = ?, topic = ?, raw_text = ?, content = ?, rating = ?, reasoning_effort = ?, updated_at = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Topic, m.RawText, m.Content, m.Rating, m.ReasoningEffort, m.UpdatedAt, m.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update record: %w", err)
	}
	return affected(result, "update record")
}

// UpdateRating sets the rating of a record.
func (r *sqlxRecordRepository) UpdateRating(ctx context.Context, id string, rating int) (bool, error) {
	query := r.db.Rebind(`UPDATE records SET rating = ?, updated_at = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, rating, time.Now(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update record rating: %w", err)
	}
	return affected(result, "update record rating")
}

// Delete removes a record.
func (r *sqlxRecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := r.db.Rebind(`DELETE FROM records WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}
	return affected(result, "delete record")
}

func (r *sqlxRecordRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func affected(result sql.Result, op string) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected for %s: %w", op, err)
	}
	return n > 0, nil
}
