package catalog

import "fmt"

// Severity grades a stock level for presentation.
type Severity string

const (
	SeverityNone    Severity = "none"    // out of stock
	SeverityWarning Severity = "warning" // running low
	SeverityOK      Severity = "ok"      // in stock
)

// StockStatus is the display classification of a stock count.
type StockStatus struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// lowStockThreshold is the largest stock count still reported as "low".
const lowStockThreshold = 2

// StatusForStock buckets a stock count into the fixed three-way business
// rule: zero is out of stock, one or two is low, anything above is in
// stock.
func StatusForStock(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatus{Label: "out of stock", Severity: SeverityNone}
	case stock <= lowStockThreshold:
		return StockStatus{Label: fmt.Sprintf("low (%d remaining)", stock), Severity: SeverityWarning}
	default:
		return StockStatus{Label: fmt.Sprintf("in stock (%d)", stock), Severity: SeverityOK}
	}
}
