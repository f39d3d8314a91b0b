package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medmcq/internal/domain"
)

// ContentJSON stores domain.ParsedContent as a JSON text column.
type ContentJSON domain.ParsedContent

// Value implements the driver.Valuer interface
func (c ContentJSON) Value() (driver.Value, error) {
	b, err := json.Marshal(domain.ParsedContent(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (c *ContentJSON) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*c = ContentJSON{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("ContentJSON Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(raw) == 0 || string(raw) == "null" {
		*c = ContentJSON{}
		return nil
	}

	var pc domain.ParsedContent
	if err := json.Unmarshal(raw, &pc); err != nil {
		return fmt.Errorf("ContentJSON Scan: %w", err)
	}
	*c = ContentJSON(pc)
	return nil
}

// Record is the row layout of the records table.
type Record struct {
	ID              string         `db:"id"`
	Name            string         `db:"display_name"`
	Topic           string         `db:"topic"`
	RawText         string         `db:"raw_text"`
	Content         ContentJSON    `db:"content"`
	Rating          int            `db:"rating"`
	Model           sql.NullString `db:"model_name"`
	Reasoning       sql.NullString `db:"reasoning"`
	ReasoningEffort string         `db:"reasoning_effort"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (Record) TableName() string {
	return "records"
}
