package product

// StockStatus is the display status derived from a product's available
// stock. It is never stored; maintenance and catalog views derive it from
// the counters on read.
type StockStatus int

const (
	// UnknownStockStatus is the invalid zero value.
	UnknownStockStatus StockStatus = iota

	// InStock means available stock is above the low-stock threshold.
	InStock

	// LowStock means available stock is positive but at or below the
	// low-stock threshold.
	LowStock

	// OutOfStock means no units are available for reservation.
	OutOfStock
)

// String returns the wire representation used by the catalog views.
func (s StockStatus) String() string {
	switch s {
	case InStock:
		return "in_stock"
	case LowStock:
		return "low_stock"
	case OutOfStock:
		return "out_of_stock"
	default:
		return "unknown"
	}
}
