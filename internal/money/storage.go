package money

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Decimal wraps decimal.Decimal for exact non-monetary numbers, such as
// exchange rates, giving them the same column treatment as Money. The
// embedded methods keep the full shopspring API.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps an existing decimal.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// GormDBDataType picks a storage type that keeps full precision on each
// driver. sqlite gets TEXT affinity; a NUMERIC column there would round
// decimal strings through float64 on the way in.
func (Money) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return decimalColumnType(db)
}

func (Decimal) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return decimalColumnType(db)
}

func decimalColumnType(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(30,18)"
}
