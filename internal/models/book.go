package models

// Book represents a company ledger row.
type Book struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	TaxID          string  `db:"tax_id"`
	TaxSerialNo    *string `db:"tax_serial_no"`
	Address        *string `db:"address"`
	PersonInCharge *string `db:"person_in_charge"`
}
