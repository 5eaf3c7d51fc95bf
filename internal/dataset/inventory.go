package dataset

import (
	"fmt"
	"slices"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/query"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// BaseColumnCount is the column count of a row without extra ext* fields.
const BaseColumnCount = 30

const skuCount = 1000

var (
	Warehouses  = []string{"WH-A", "WH-B", "WH-C"}
	Zones       = []string{"Z01", "Z02", "Z03", "Z04", "Z05", "Z06"}
	owners      = []string{"Owner-A", "Owner-B", "Owner-C"}
	suppliers   = []string{"Supplier-A", "Supplier-B", "Supplier-C", "Supplier-D"}
	skuVariants = []string{"Standard", "Reinforced", "Light", "Combo", "ColdChain"}
	extEnums    = []string{"E1", "E2", "E3", "E4"}
)

// ExtKey names the ext* field produced for the extra-th additional column.
func ExtKey(extra int) string {
	switch extra % 4 {
	case 0:
		return fmt.Sprintf("extText%d", extra+2)
	case 1:
		return fmt.Sprintf("extEnum%d", extra+2)
	case 2:
		return fmt.Sprintf("extNum%d", extra+2)
	}
	return fmt.Sprintf("extDate%d", extra+1)
}

func extText(n int) string {
	return "Text-" + pad(n%9999, 4)
}

// GenerateInventory builds size rows from seed. The draw order per row is
// fixed; changing it changes every dataset. Rows come back ordered by
// sku+batch.
func GenerateInventory(size int, seed uint32, columnSize int, now time.Time) []types.InventoryRow {
	now = normalizeNow(now)
	r := rng.New(seed)
	batchDay := now.UTC().Format("20060102")
	extraCount := max(0, columnSize-BaseColumnCount)

	rows := make([]types.InventoryRow, 0, size)
	for i := 0; i < size; i++ {
		skuIndex := rng.RandInt(r, 1, skuCount)
		sku := "SKU" + pad(skuIndex, 6)
		skuName := "Item-" + pad(skuIndex, 4) + "-" + rng.PickOne(r, skuVariants)
		batch := "BATCH-" + batchDay + "-" + pad(rng.RandInt(r, 1, 5), 2)
		warehouse := rng.PickOne(r, Warehouses)
		zone := rng.PickOne(r, Zones)
		bin := "B" + pad(rng.RandInt(r, 1, 80), 4)

		inboundAt := randomPast(r, now, 180)
		lastMoveAt := inboundAt.AddDate(0, 0, rng.RandInt(r, 0, 90))
		expireAt := randomFuture(r, now, -30, 365)

		quality := "NG"
		if rng.Chance(r, 0.8) {
			quality = "OK"
		} else if rng.Chance(r, 0.75) {
			quality = "HOLD"
		}
		freeze := "FROZEN"
		if rng.Chance(r, 0.85) {
			freeze = "NONE"
		}
		abc := "C"
		if rng.Chance(r, 0.2) {
			abc = "A"
		} else if rng.Chance(r, 0.375) {
			abc = "B"
		}

		onHand := rng.RandInt(r, 0, 500)
		reserved := rng.RandInt(r, 0, min(200, onHand))
		damaged := rng.RandInt(r, 0, min(20, max(0, onHand-reserved)))
		frozen := 0
		if freeze == "FROZEN" {
			// when onHand < 10 the clamp yields onHand
			frozen = rng.RandInt(r, 10, min(100, onHand))
		}
		available := max(0, onHand-reserved-damaged-frozen)

		row := types.InventoryRow{
			ID:            fmt.Sprintf("INV-%d-%d", seed, i+1),
			Warehouse:     warehouse,
			Zone:          zone,
			Bin:           bin,
			SKU:           sku,
			SKUName:       skuName,
			Batch:         batch,
			Owner:         rng.PickOne(r, owners),
			Supplier:      rng.PickOne(r, suppliers),
			QualityStatus: quality,
			FreezeStatus:  freeze,
			ABCClass:      abc,
			RiskLevel:     RiskLevel(expireAt, now),
			OnHand:        onHand,
			Available:     available,
			Reserved:      reserved,
			Damaged:       damaged,
			Frozen:        frozen,
			InboundAt:     ToISO(inboundAt),
			LastMoveAt:    ToISO(lastMoveAt),
			ExpireAt:      ToISO(expireAt),
		}

		ext := make(map[string]any, 7+extraCount)
		ext["extText1"] = extText(i + 1)
		ext["extText2"] = extText(i + 2)
		ext["extEnum1"] = rng.PickOne(r, extEnums)
		ext["extEnum2"] = rng.PickOne(r, extEnums)
		ext["extNum1"] = rng.RandInt(r, 0, 10000)
		ext["extNum2"] = rng.RandInt(r, 0, 10000)
		ext["extDate1"] = ToISO(randomPast(r, now, 365))
		for extra := 1; extra <= extraCount; extra++ {
			key := ExtKey(extra)
			switch extra % 4 {
			case 0:
				ext[key] = extText(i + extra)
			case 1:
				ext[key] = rng.PickOne(r, extEnums)
			case 2:
				ext[key] = rng.RandInt(r, 0, 10000)
			case 3:
				ext[key] = ToISO(randomPast(r, now, 365))
			}
		}
		row.Ext = ext

		rows = append(rows, row)
	}

	col := query.NewCollator()
	slices.SortStableFunc(rows, func(a, b types.InventoryRow) int {
		return col.CompareString(a.SKU+a.Batch, b.SKU+b.Batch)
	})
	return rows
}
