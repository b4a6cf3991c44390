package sqlutil

import (
	"database/sql"
)

// Helper functions for converting between Go types and sql.Null* types

// ToSqlString converts a Go string pointer to sql.NullString
func ToSqlString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *val, Valid: true}
}

// FromSqlStringPtr converts sql.NullString to Go string pointer
func FromSqlStringPtr(val sql.NullString) *string {
	if !val.Valid {
		return nil
	}
	return &val.String
}

// ToSqlInt32 converts a Go int32 pointer to sql.NullInt32
func ToSqlInt32(val *int32) sql.NullInt32 {
	if val == nil {
		return sql.NullInt32{Valid: false}
	}
	return sql.NullInt32{Int32: *val, Valid: true}
}

// FromSqlInt32Ptr converts sql.NullInt32 to Go int32 pointer
func FromSqlInt32Ptr(val sql.NullInt32) *int32 {
	if !val.Valid {
		return nil
	}
	return &val.Int32
}
