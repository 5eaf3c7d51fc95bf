package dataset

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const (
	zonesPerWarehouse = 6
	binsPerZone       = 80
	maxBatchStocks    = 16
)

func TreeRoots(seed uint32) []types.TreeNode {
	out := make([]types.TreeNode, len(Warehouses))
	for i, w := range Warehouses {
		out[i] = types.TreeNode{
			ID:          fmt.Sprintf("TREE-%d-%s", seed, w),
			Type:        types.NodeWarehouse,
			Name:        w,
			HasChildren: true,
			Level:       0,
		}
	}
	return out
}

// TreeLevel reads the depth of a node back from its id.
// "TREE-{seed}-WH-A" is level 0 and every "-segment" adds one.
func TreeLevel(id string) int {
	return max(0, len(strings.Split(id, "-"))-4)
}

// TreeChildren expands parentID with r, which the caller has already
// advanced past its latency and failure draws.
func TreeChildren(r *rng.Rng, parentID string, now time.Time) []types.TreeNode {
	next := TreeLevel(parentID) + 1
	switch next {
	case 1:
		out := make([]types.TreeNode, zonesPerWarehouse)
		for i := range out {
			name := "Z" + pad(i+1, 2)
			out[i] = types.TreeNode{
				ID:          parentID + "-" + name,
				ParentID:    parentID,
				Type:        types.NodeZone,
				Name:        name,
				HasChildren: true,
				Level:       next,
			}
		}
		return out
	case 2:
		out := make([]types.TreeNode, binsPerZone)
		for i := range out {
			name := "B" + pad(i+1, 4)
			sum := int(math.Floor(r.Float64() * 4000))
			out[i] = types.TreeNode{
				ID:           parentID + "-" + name,
				ParentID:     parentID,
				Type:         types.NodeBin,
				Name:         name,
				HasChildren:  true,
				Level:        next,
				AvailableSum: &sum,
			}
		}
		return out
	case 3:
		now = normalizeNow(now)
		n := int(math.Floor(r.Float64() * maxBatchStocks))
		out := make([]types.TreeNode, n)
		for i := range out {
			days := int(math.Floor(r.Float64()*365)) - 30
			sum := int(math.Floor(r.Float64() * 500))
			seq := pad(i+1, 2)
			out[i] = types.TreeNode{
				ID:           parentID + "-BS" + seq,
				ParentID:     parentID,
				Type:         types.NodeBatchStock,
				Name:         "BatchStock-" + seq,
				HasChildren:  false,
				Level:        next,
				AvailableSum: &sum,
				ExpireAtMin:  ToISO(now.Add(time.Duration(days) * day)),
			}
		}
		return out
	}
	return []types.TreeNode{}
}
