package services_test

import "github.com/jackc/pgx/v5/pgtype"

func pgtypeInt8(v int64) pgtype.Int8 {
	return pgtype.Int8{Int64: v, Valid: true}
}
