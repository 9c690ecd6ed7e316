package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/ikkim/pcbuild-backend/internal/app/model"
)

// numericFields are parsed as numbers; anything unparsable becomes 0.
var numericFields = map[string]bool{
	"price":        true,
	"score":        true,
	"tdp":          true,
	"capacity":     true,
	"length":       true,
	"wattage":      true,
	"maxGpuLength": true,
}

// setFields are semicolon-separated lists, keyed by the category that declares them as a set.
// Motherboard.formFactor is a single value and stays a string.
var setFields = map[model.Category]map[string]bool{
	model.CategoryPCCase:    {"formFactor": true},
	model.CategoryCPUCooler: {"supportedSockets": true},
}

// ParseNumber reads a cell as an integer, rounding half away from zero.
// Non-numeric cells and values outside the int64 range give 0.
func ParseNumber(s string) int64 {
	n, _ := parseInt(s)
	return n
}

// parseInt reports false for blank, non-numeric or out of range cells.
func parseInt(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Round(f)
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// ParseSet splits a semicolon-separated cell, dropping empty tokens.
func ParseSet(s string) []string {
	out := []string{}
	for _, tok := range strings.Split(s, ";") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ImportID is the id given to data row n (1-based) when the sheet leaves it blank.
// It depends only on the row position so re-importing a file yields the same ids.
func ImportID(prefix string, row int) string {
	return fmt.Sprintf("%s-import-%d", prefix, row)
}

// Components converts every data row into a component of cat.
// Rows failing the same validation as the admin form, such as a negative price, abort the import.
func Components(cat model.Category, t *Table) ([]model.Component, error) {
	if !cat.Valid() {
		return nil, model.ErrUnknownCategory
	}

	out := make([]model.Component, 0, len(t.Rows))
	for i := range t.Rows {
		comp, err := decodeComponent(cat, t.Record(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := binding.Validator.ValidateStruct(comp); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if comp.Base().ID == "" {
			comp = model.WithID(comp, ImportID(cat.IDPrefix(), i+1))
		}
		out = append(out, comp)
	}
	return out, nil
}

func decodeComponent(cat model.Category, rec map[string]string) (model.Component, error) {
	fields := make(map[string]interface{}, len(rec))
	for k, v := range rec {
		switch {
		case numericFields[k]:
			fields[k] = ParseNumber(v)
		case setFields[cat][k]:
			fields[k] = ParseSet(v)
		default:
			fields[k] = v
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	return model.DecodeComponent(cat, data)
}

// AdditionalItems converts rows with the header id,category,productName,name,cost,additionalPrice,upgradePrice.
// A blank, non-numeric or out of range upgradePrice means the item has no upgrade price.
// Negative amounts are left for AdditionalItemService.BulkAdd to reject.
func AdditionalItems(t *Table) []model.AdditionalItem {
	out := make([]model.AdditionalItem, 0, len(t.Rows))
	for i := range t.Rows {
		rec := t.Record(i)
		item := model.AdditionalItem{
			ID:              rec["id"],
			Category:        rec["category"],
			ProductName:     rec["productName"],
			Name:            rec["name"],
			Cost:            ParseNumber(rec["cost"]),
			AdditionalPrice: ParseNumber(rec["additionalPrice"]),
		}
		if n, ok := parseInt(rec["upgradePrice"]); ok {
			item.UpgradePrice = model.Int64Ptr(n)
		}
		if item.ID == "" {
			item.ID = ImportID("add", i+1)
		}
		out = append(out, item)
	}
	return out
}
