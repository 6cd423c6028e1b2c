package pgsql

import (
	"testing"

	"github.com/SscSPs/book_reports/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPreferBookAccounts(t *testing.T) {
	// Shared rows sort first, so a book row with the same code replaces it in place.
	accounts := []domain.Account{
		{ID: 1, Code: "1100", Name: "Cash"},
		{ID: 2, Code: "1170", Name: "Receivables"},
		{ID: 3, BookID: 42, Code: "1100", Name: "Cash and equivalents"},
		{ID: 4, BookID: 42, Code: "1190", Name: "Other receivables"},
	}

	got := preferBookAccounts(accounts)

	assert.Equal(t, []domain.Account{
		{ID: 3, BookID: 42, Code: "1100", Name: "Cash and equivalents"},
		{ID: 2, Code: "1170", Name: "Receivables"},
		{ID: 4, BookID: 42, Code: "1190", Name: "Other receivables"},
	}, got)
}

func TestPreferBookAccounts_Empty(t *testing.T) {
	assert.Empty(t, preferBookAccounts(nil))
}
