package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SellPhone   Category = "sell-phone"
	RepairPhone Category = "repair-phone"
	Transfer    Category = "transfer"
	TopUp       Category = "top-up"
	Other       Category = "other"
)

// OtherModel is the sentinel brand entry; choosing it reveals a free-text
// override in the form.
const OtherModel = "อื่นๆ"

type (
	Category string

	// Transaction is one recorded sale, repair, transfer or top-up event.
	// Date is a calendar date in ISO YYYY-MM-DD form. Profit is always
	// derived as Price - (Cost or 0) and never edited directly.
	Transaction struct {
		ID          string
		Date        string
		Category    Category
		Model       string
		DeviceModel string
		Detail      string
		Cost        *decimal.Decimal
		Price       decimal.Decimal
		Profit      decimal.Decimal
	}

	// Patch carries a set of field changes. Nil pointers leave the
	// corresponding field untouched; ClearCost drops a stored cost.
	Patch struct {
		Date        *string
		Category    *Category
		Model       *string
		DeviceModel *string
		Detail      *string
		Cost        *decimal.Decimal
		ClearCost   bool
		Price       *decimal.Decimal
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeCost    = errors.New("cost cannot be negative")
)

var categoryLabels = map[Category]string{
	SellPhone:   "ขายโทรศัพท์",
	RepairPhone: "ซ่อมโทรศัพท์",
	Transfer:    "โอนเงิน",
	TopUp:       "เติมเงิน",
	Other:       "อื่นๆ",
}

var sellModels = []string{
	"VIVO", "OPPO", "Samsung", "Infinix", "TECNO", "realme", "iphone", "ปุ่มกด", OtherModel,
}

var repairModels = []string{
	"iPhone", "VIVO", "OPPO", "Samsung", "Infinix", "TECNO", "realme", OtherModel,
}

var allModels = []string{
	"iPhone", "VIVO", "OPPO", "Samsung", "Infinix", "TECNO", "realme", "ปุ่มกด", OtherModel,
}

// Categories returns the fixed category enumeration in display order.
func Categories() []Category {
	return []Category{SellPhone, RepairPhone, Transfer, TopUp, Other}
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the user-facing name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// SellModels returns the brand taxonomy offered when selling a phone.
func SellModels() []string {
	return append([]string(nil), sellModels...)
}

// RepairModels returns the brand taxonomy offered when repairing a phone.
func RepairModels() []string {
	return append([]string(nil), repairModels...)
}

// AllModels returns the combined brand list used by the period page's
// model filter.
func AllModels() []string {
	return append([]string(nil), allModels...)
}

// CostOrZero returns the cost, treating an absent cost as zero.
func (t Transaction) CostOrZero() decimal.Decimal {
	if t.Cost == nil {
		return decimal.Zero
	}
	return *t.Cost
}

// HasCost reports whether a cost was recorded for the transaction.
func (t Transaction) HasCost() bool {
	return t.Cost != nil
}

// Apply merges the patch onto the transaction and recomputes Profit.
// The ID is never touched.
func (p Patch) Apply(t *Transaction) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.DeviceModel != nil {
		t.DeviceModel = *p.DeviceModel
	}
	if p.Detail != nil {
		t.Detail = *p.Detail
	}
	if p.ClearCost {
		t.Cost = nil
	} else if p.Cost != nil {
		c := *p.Cost
		t.Cost = &c
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	t.Profit = t.Price.Sub(t.CostOrZero())
}

func (t Transaction) Validate() error {
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return ErrInvalidDate
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if t.Price.IsNegative() {
		return ErrNegativePrice
	}
	if t.Cost != nil && t.Cost.IsNegative() {
		return ErrNegativeCost
	}
	return nil
}

// Today returns the current calendar date in ISO form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// DisplayModel returns the brand/model line shown on a transaction card,
// or "-" when neither is set.
func (t Transaction) DisplayModel() string {
	parts := make([]string, 0, 2)
	if t.Model != "" {
		parts = append(parts, t.Model)
	}
	if t.DeviceModel != "" {
		parts = append(parts, t.DeviceModel)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
