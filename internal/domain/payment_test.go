package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExceedsInvoiceAmount(t *testing.T) {
	tests := []struct {
		name          string
		alreadyPaid   float64
		amount        float64
		invoiceAmount float64
		want          bool
	}{
		{"partial payment under total", 300, 200, 500, false},
		{"one unit over total", 300, 201, 500, true},
		{"first payment covers invoice exactly", 0, 500, 500, false},
		{"first payment over invoice", 0, 500.01, 500, true},
		{"topping up a settled invoice", 500, 0.01, 500, true},
		{"zero amount on settled invoice", 500, 0, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExceedsInvoiceAmount(tt.alreadyPaid, tt.amount, tt.invoiceAmount))
		})
	}
}
