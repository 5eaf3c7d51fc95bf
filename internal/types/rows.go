package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ExtPrefix marks the open-ended extension columns of an inventory row.
const ExtPrefix = "ext"

type InventoryRow struct {
	ID            string `json:"id"`
	Warehouse     string `json:"warehouse"`
	Zone          string `json:"zone"`
	Bin           string `json:"bin"`
	SKU           string `json:"sku"`
	SKUName       string `json:"skuName"`
	Batch         string `json:"batch"`
	Owner         string `json:"owner"`
	Supplier      string `json:"supplier"`
	QualityStatus string `json:"qualityStatus"`
	FreezeStatus  string `json:"freezeStatus"`
	ABCClass      string `json:"abcClass"`
	RiskLevel     int    `json:"riskLevel"`
	OnHand        int    `json:"onHand"`
	Available     int    `json:"available"`
	Reserved      int    `json:"reserved"`
	Damaged       int    `json:"damaged"`
	Frozen        int    `json:"frozen"`
	InboundAt     string `json:"inboundAt"`
	LastMoveAt    string `json:"lastMoveAt"`
	ExpireAt      string `json:"expireAt"`

	// Ext holds the ext* columns used to scale the column count. Rows handed
	// out by the generator share this map with its cache; do not mutate it.
	Ext map[string]any `json:"-"`
}

// Field returns the value of a column by its wire name, nil when absent.
func (r InventoryRow) Field(name string) any {
	switch name {
	case "id":
		return r.ID
	case "warehouse":
		return r.Warehouse
	case "zone":
		return r.Zone
	case "bin":
		return r.Bin
	case "sku":
		return r.SKU
	case "skuName":
		return r.SKUName
	case "batch":
		return r.Batch
	case "owner":
		return r.Owner
	case "supplier":
		return r.Supplier
	case "qualityStatus":
		return r.QualityStatus
	case "freezeStatus":
		return r.FreezeStatus
	case "abcClass":
		return r.ABCClass
	case "riskLevel":
		return r.RiskLevel
	case "onHand":
		return r.OnHand
	case "available":
		return r.Available
	case "reserved":
		return r.Reserved
	case "damaged":
		return r.Damaged
	case "frozen":
		return r.Frozen
	case "inboundAt":
		return r.InboundAt
	case "lastMoveAt":
		return r.LastMoveAt
	case "expireAt":
		return r.ExpireAt
	}
	if v, ok := r.Ext[name]; ok {
		return v
	}
	return nil
}

// MarshalJSON flattens the ext* columns into the row object.
func (r InventoryRow) MarshalJSON() ([]byte, error) {
	type plain InventoryRow
	base, err := json.Marshal(plain(r))
	if err != nil || len(r.Ext) == 0 {
		return base, err
	}
	ext, err := json.Marshal(r.Ext)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(base) + len(ext))
	buf.Write(base[:len(base)-1])
	buf.WriteByte(',')
	buf.Write(ext[1:])
	return buf.Bytes(), nil
}

func (r *InventoryRow) UnmarshalJSON(data []byte) error {
	type plain InventoryRow
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if !strings.HasPrefix(k, ExtPrefix) {
			continue
		}
		if p.Ext == nil {
			p.Ext = make(map[string]any)
		}
		p.Ext[k] = v
	}
	*r = InventoryRow(p)
	return nil
}

type ExceptionType string

const (
	ExceptionShort      ExceptionType = "SHORT"
	ExceptionExpireRisk ExceptionType = "EXPIRE_RISK"
	ExceptionFrozen     ExceptionType = "FROZEN"
	ExceptionCountDiff  ExceptionType = "COUNT_DIFF"
)

type ExceptionStatus string

const (
	ExceptionOpen       ExceptionStatus = "OPEN"
	ExceptionProcessing ExceptionStatus = "PROCESSING"
	ExceptionDone       ExceptionStatus = "DONE"
)

type ExceptionRow struct {
	ID        string          `json:"id"`
	Type      ExceptionType   `json:"type"`
	SKU       string          `json:"sku"`
	SKUName   string          `json:"skuName"`
	Bin       string          `json:"bin"`
	RiskLevel int             `json:"riskLevel"`
	CreatedAt string          `json:"createdAt"`
	Status    ExceptionStatus `json:"status"`
	Assignee  *string         `json:"assignee"`
	Message   string          `json:"message"`
}

func (r ExceptionRow) Field(name string) any {
	switch name {
	case "id":
		return r.ID
	case "type":
		return string(r.Type)
	case "sku":
		return r.SKU
	case "skuName":
		return r.SKUName
	case "bin":
		return r.Bin
	case "riskLevel":
		return r.RiskLevel
	case "createdAt":
		return r.CreatedAt
	case "status":
		return string(r.Status)
	case "assignee":
		if r.Assignee == nil {
			return nil
		}
		return *r.Assignee
	case "message":
		return r.Message
	}
	return nil
}

type TreeNodeType string

const (
	NodeWarehouse  TreeNodeType = "warehouse"
	NodeZone       TreeNodeType = "zone"
	NodeBin        TreeNodeType = "bin"
	NodeBatchStock TreeNodeType = "batchStock"
)

// TreeNode is a lazily expanded node; children are fetched on demand.
type TreeNode struct {
	ID           string       `json:"id"`
	ParentID     string       `json:"parentId,omitempty"`
	Type         TreeNodeType `json:"type"`
	Name         string       `json:"name"`
	HasChildren  bool         `json:"hasChildren"`
	Level        int          `json:"level"`
	AvailableSum *int         `json:"availableSum,omitempty"`
	ExpireAtMin  string       `json:"expireAtMin,omitempty"`
}

func (n TreeNode) Field(name string) any {
	switch name {
	case "id":
		return n.ID
	case "parentId":
		if n.ParentID == "" {
			return nil
		}
		return n.ParentID
	case "type":
		return string(n.Type)
	case "name":
		return n.Name
	case "hasChildren":
		return n.HasChildren
	case "level":
		return n.Level
	case "availableSum":
		if n.AvailableSum == nil {
			return nil
		}
		return *n.AvailableSum
	case "expireAtMin":
		if n.ExpireAtMin == "" {
			return nil
		}
		return n.ExpireAtMin
	}
	return nil
}

type Picker struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p Picker) Field(name string) any {
	switch name {
	case "id":
		return p.ID
	case "name":
		return p.Name
	}
	return nil
}

type PickStrategy string

const (
	StrategyFIFO      PickStrategy = "FIFO"
	StrategyFEFO      PickStrategy = "FEFO"
	StrategyManual    PickStrategy = "MANUAL"
	StrategyZoneFirst PickStrategy = "ZONE_FIRST"
)

type PickLineStatus string

const (
	LineClean      PickLineStatus = "clean"
	LineDirty      PickLineStatus = "dirty"
	LineValidating PickLineStatus = "validating"
	LineError      PickLineStatus = "error"
	LineReady      PickLineStatus = "ready"
	LineSubmitted  PickLineStatus = "submitted"
)

type PickLineError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PickLine is an editable picking row sourced from an inventory row.
type PickLine struct {
	LineID     string          `json:"lineId"`
	SourceID   string          `json:"sourceId"`
	SKU        string          `json:"sku"`
	SKUName    string          `json:"skuName"`
	Batch      string          `json:"batch"`
	Bin        string          `json:"bin"`
	Available  int             `json:"available"`
	PickQty    *int            `json:"pickQty"`
	PickerID   *string         `json:"pickerId"`
	PickerName *string         `json:"pickerName"`
	Strategy   PickStrategy    `json:"strategy"`
	Remark     string          `json:"remark"`
	RowStatus  PickLineStatus  `json:"rowStatus"`
	Errors     []PickLineError `json:"errors"`
}
