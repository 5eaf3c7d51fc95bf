// Package columns describes the inventory grid: which fields are shown, in
// what order, and how each one is filtered.
package columns

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

type Kind string

const (
	KindText   Kind = "text"
	KindEnum   Kind = "enum"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindAction Kind = "action"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type Fixed string

const (
	FixedLeft  Fixed = "left"
	FixedRight Fixed = "right"
)

type Column struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Width int    `json:"width"`
	Align Align  `json:"align,omitempty"`
	Fixed Fixed  `json:"fixed,omitempty"`
	Kind  Kind   `json:"kind"`
}

// FilterOp is the operator a column filter uses, empty for action columns.
func (c Column) FilterOp() types.FilterOp {
	switch c.Kind {
	case KindText:
		return types.OpTextContains
	case KindEnum:
		return types.OpEnumIn
	case KindNumber:
		return types.OpNumberRange
	case KindDate:
		return types.OpDateRange
	}
	return ""
}

var base = []Column{
	{Key: "sku", Title: "SKU", Width: 140, Fixed: FixedLeft, Kind: KindText},
	{Key: "skuName", Title: "Name", Width: 220, Fixed: FixedLeft, Kind: KindText},
	{Key: "batch", Title: "Batch", Width: 140, Kind: KindText},
	{Key: "owner", Title: "Owner", Width: 140, Kind: KindEnum},
	{Key: "supplier", Title: "Supplier", Width: 160, Kind: KindEnum},
	{Key: "warehouse", Title: "Warehouse", Width: 120, Kind: KindEnum},
	{Key: "zone", Title: "Zone", Width: 120, Kind: KindEnum},
	{Key: "bin", Title: "Bin", Width: 140, Kind: KindText},
	{Key: "onHand", Title: "On hand", Width: 110, Align: AlignRight, Kind: KindNumber},
	{Key: "available", Title: "Available", Width: 110, Align: AlignRight, Fixed: FixedRight, Kind: KindNumber},
	{Key: "reserved", Title: "Reserved", Width: 110, Align: AlignRight, Kind: KindNumber},
	{Key: "damaged", Title: "Damaged", Width: 110, Align: AlignRight, Kind: KindNumber},
	{Key: "frozen", Title: "Frozen qty", Width: 110, Align: AlignRight, Kind: KindNumber},
	{Key: "qualityStatus", Title: "Quality", Width: 100, Align: AlignCenter, Kind: KindEnum},
	{Key: "freezeStatus", Title: "Freeze", Width: 110, Align: AlignCenter, Kind: KindEnum},
	{Key: "abcClass", Title: "ABC", Width: 80, Align: AlignCenter, Kind: KindEnum},
	{Key: "riskLevel", Title: "Risk", Width: 110, Align: AlignCenter, Kind: KindEnum},
	{Key: "inboundAt", Title: "Inbound", Width: 160, Kind: KindDate},
	{Key: "lastMoveAt", Title: "Last move", Width: 160, Kind: KindDate},
	{Key: "expireAt", Title: "Expires", Width: 160, Kind: KindDate},
	{Key: "id", Title: "Row ID", Width: 160, Kind: KindText},
	{Key: "opView", Title: "View", Width: 90, Align: AlignCenter, Fixed: FixedRight, Kind: KindAction},
	{Key: "opCopySku", Title: "Copy SKU", Width: 110, Align: AlignCenter, Fixed: FixedRight, Kind: KindAction},
	extColumn("extText1"),
	extColumn("extText2"),
	extColumn("extEnum1"),
	extColumn("extEnum2"),
	extColumn("extNum1"),
	extColumn("extNum2"),
	extColumn("extDate1"),
}

// extColumn derives the column for a generated ext* field from its name.
func extColumn(key string) Column {
	rest := strings.TrimPrefix(key, types.ExtPrefix)
	switch {
	case strings.HasPrefix(rest, "Text"):
		return Column{Key: key, Title: "Ext text " + rest[4:], Width: 140, Kind: KindText}
	case strings.HasPrefix(rest, "Enum"):
		return Column{Key: key, Title: "Ext enum " + rest[4:], Width: 120, Align: AlignCenter, Kind: KindEnum}
	case strings.HasPrefix(rest, "Num"):
		return Column{Key: key, Title: "Ext number " + rest[3:], Width: 120, Align: AlignRight, Kind: KindNumber}
	}
	return Column{Key: key, Title: "Ext date " + strings.TrimPrefix(rest, "Date"), Width: 160, Kind: KindDate}
}

// InventoryColumns returns exactly columnSize columns. Extra columns use the
// same ext* names the generator writes, so every column has data behind it.
func InventoryColumns(columnSize int) ([]Column, error) {
	if !lo.Contains(types.ColumnSizes, columnSize) {
		return nil, fmt.Errorf("%w: %d", types.ErrUnsupportedColumnSize, columnSize)
	}
	cols := make([]Column, 0, columnSize)
	cols = append(cols, base...)
	for extra := 1; len(cols) < columnSize; extra++ {
		cols = append(cols, extColumn(dataset.ExtKey(extra)))
	}
	return cols, nil
}

// Keys lists the column keys in display order.
func Keys(cols []Column) []string {
	return lo.Map(cols, func(c Column, _ int) string { return c.Key })
}

// Filterable drops the action columns.
func Filterable(cols []Column) []Column {
	return lo.Filter(cols, func(c Column, _ int) bool { return c.Kind != KindAction })
}
