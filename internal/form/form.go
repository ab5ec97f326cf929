// Package form implements the transaction form: raw input parsing,
// field-level validation and the category-driven field visibility rules.
// A valid submission produces a core.Patch that the store applies either
// as a create or as an edit.
package form

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fbmobile/internal/core"
)

// Input carries the raw string values of one form submission.
type Input struct {
	Date         string
	Category     string
	Model        string
	ModelOther   string
	DeviceModel  string
	RepairDetail string
	Cost         string
	Price        string
}

// FieldErrors maps field name to a user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool { return len(e) == 0 }

// Visibility describes which conditional fields the form shows for a
// category.
type Visibility struct {
	Model        bool
	DeviceModel  bool
	RepairDetail bool
	Cost         bool
}

// VisibilityFor returns the conditional-field table for a category.
// Transfers and top-ups carry no product or cost fields; only repairs
// show the repair detail.
func VisibilityFor(c core.Category) Visibility {
	switch c {
	case core.SellPhone:
		return Visibility{Model: true, DeviceModel: true, Cost: true}
	case core.RepairPhone:
		return Visibility{Model: true, DeviceModel: true, RepairDetail: true, Cost: true}
	case core.Other:
		return Visibility{Cost: true}
	default:
		return Visibility{}
	}
}

// Models returns the brand taxonomy for the category, or nil when the
// category has no brand selector.
func Models(c core.Category) []string {
	switch c {
	case core.SellPhone:
		return core.SellModels()
	case core.RepairPhone:
		return core.RepairModels()
	}
	return nil
}

// Validate checks the submission and builds the resulting patch. The
// patch sets every form-owned field, so applying it to an existing
// record replaces the previous form values; fields hidden for the
// chosen category are cleared. A blank date defaults to today.
func (in Input) Validate(today string) (core.Patch, FieldErrors) {
	errs := make(FieldErrors)

	cat := core.Category(strings.TrimSpace(in.Category))
	if cat == "" {
		errs["category"] = "กรุณาเลือกหมวดหมู่"
	} else if !cat.Valid() {
		errs["category"] = "หมวดหมู่ไม่ถูกต้อง"
	}
	vis := VisibilityFor(cat)

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = today
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		errs["date"] = "วันที่ไม่ถูกต้อง"
	}

	price, _ := parseAmount(in.Price, true, errs, "price")

	var cost *decimal.Decimal
	if vis.Cost && strings.TrimSpace(in.Cost) != "" {
		if c, ok := parseAmount(in.Cost, false, errs, "cost"); ok {
			cost = &c
		}
	}

	model := ""
	deviceModel := ""
	if vis.Model {
		model = strings.TrimSpace(in.Model)
		// The "other" sentinel reveals a free-text override which, when
		// filled in, replaces the sentinel.
		if model == core.OtherModel {
			if o := strings.TrimSpace(in.ModelOther); o != "" {
				model = o
			}
		}
	}
	if vis.DeviceModel {
		deviceModel = strings.TrimSpace(in.DeviceModel)
	}

	detail := ""
	if vis.RepairDetail {
		detail = strings.TrimSpace(in.RepairDetail)
	}

	if !errs.OK() {
		return core.Patch{}, errs
	}

	return core.Patch{
		Date:        &date,
		Category:    &cat,
		Model:       &model,
		DeviceModel: &deviceModel,
		Detail:      &detail,
		Cost:        cost,
		ClearCost:   cost == nil,
		Price:       &price,
	}, errs
}

func parseAmount(raw string, required bool, errs FieldErrors, field string) (decimal.Decimal, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		if required {
			errs[field] = "กรุณากรอกจำนวนเงิน"
		}
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		errs[field] = "จำนวนเงินไม่ถูกต้อง"
		return decimal.Zero, false
	}
	if d.IsNegative() {
		errs[field] = "จำนวนเงินต้องไม่ติดลบ"
		return decimal.Zero, false
	}
	return d, true
}

// FromTransaction prefills form input from an existing record, used when
// the form opens in edit mode.
func FromTransaction(t core.Transaction) Input {
	in := Input{
		Date:         t.Date,
		Category:     string(t.Category),
		Model:        t.Model,
		DeviceModel:  t.DeviceModel,
		RepairDetail: t.Detail,
		Price:        t.Price.String(),
	}
	if t.Cost != nil {
		in.Cost = t.Cost.String()
	}
	return in
}
