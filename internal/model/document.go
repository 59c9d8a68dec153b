package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const (
	DocumentTable    = "sirup_data"
	GlobalDocumentID = "global_state"
)

// StateDocument adalah satu baris di store remote yang menampung seluruh AppState.
type StateDocument struct {
	ID          string   `gorm:"primaryKey;size:64"`
	JSONContent JSONText `gorm:"column:json_content;not null"`
	UpdatedAt   time.Time
}

func (StateDocument) TableName() string {
	return DocumentTable
}

// JSONText menyimpan dokumen JSON sebagai teks panjang sesuai dialek database.
type JSONText string

func (JSONText) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "LONGTEXT"
	default:
		return "TEXT"
	}
}

func (j JSONText) Value() (driver.Value, error) {
	return string(j), nil
}

func (j *JSONText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = ""
	case string:
		*j = JSONText(v)
	case []byte:
		*j = JSONText(v)
	default:
		return fmt.Errorf("json_content: tipe %T tidak didukung", src)
	}
	return nil
}
