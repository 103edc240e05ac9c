package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForStock(t *testing.T) {
	tests := []struct {
		stock    int
		label    string
		severity Severity
	}{
		{0, "out of stock", SeverityNone},
		{1, "low (1 remaining)", SeverityWarning},
		{2, "low (2 remaining)", SeverityWarning}, // boundary: 2 is still low
		{3, "in stock (3)", SeverityOK},           // boundary: 3 is in stock
		{12, "in stock (12)", SeverityOK},
	}

	for _, tt := range tests {
		status := StatusForStock(tt.stock)
		assert.Equal(t, tt.label, status.Label, "stock=%d", tt.stock)
		assert.Equal(t, tt.severity, status.Severity, "stock=%d", tt.stock)
	}
}

func TestStatusForStock_NegativeTreatedAsOut(t *testing.T) {
	status := StatusForStock(-1)
	assert.Equal(t, SeverityNone, status.Severity)
}
