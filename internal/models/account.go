package models

// Account represents a chart-of-accounts row.
// BookID is nullable: rows without a book belong to the shared default chart.
type Account struct {
	ID          int64   `db:"id"`
	BookID      *int64  `db:"book_id"`
	Code        string  `db:"code"`
	Name        string  `db:"name"`
	DebitNature bool    `db:"debit"`
	ParentCode  *string `db:"parent_code"`
	Level       int     `db:"level"`
}
