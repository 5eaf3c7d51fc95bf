package mockapi_grpc_service

import (
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/columns"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// Request and response bodies. Each one travels as a google.protobuf.Struct
// holding its JSON form.

type SeedRequest struct {
	Seed uint32 `json:"seed"`
}

type TreeChildrenRequest struct {
	Seed     uint32 `json:"seed"`
	ParentID string `json:"parentId"`
}

type SearchPickersRequest struct {
	Seed  uint32 `json:"seed"`
	Query string `json:"q"`
}

type ValidatePickerRequest struct {
	Seed     uint32 `json:"seed"`
	PickerID string `json:"pickerId"`
	LineID   string `json:"lineId"`
}

type SubmitPickingRequest struct {
	Seed  uint32             `json:"seed"`
	Lines []types.SubmitLine `json:"lines"`
}

type ExceptionActionRequest struct {
	Seed   uint32                    `json:"seed"`
	Action types.ExceptionActionKind `json:"action"`
	ID     string                    `json:"id"`
}

type TimelineRequest struct {
	Seed uint32 `json:"seed"`
	ID   string `json:"id"`
}

type ColumnsRequest struct {
	ColumnSize int `json:"columnSize"`
}

type TreeNodesResponse struct {
	Nodes []types.TreeNode `json:"nodes"`
}

type PickersResponse struct {
	Pickers []types.Picker `json:"pickers"`
}

type TimelineResponse struct {
	Entries []types.TimelineEntry `json:"entries"`
}

type ColumnsResponse struct {
	Columns []columns.Column `json:"columns"`
}
