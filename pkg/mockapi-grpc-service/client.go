package mockapi_grpc_service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/columns"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// Client calls a remote MockBackend. It satisfies Backend, so code written
// against the in-process service runs unchanged over the wire.
type Client struct {
	cc grpc.ClientConnInterface
}

var _ Backend = (*Client)(nil)

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, req any) (Resp, error) {
	var resp Resp
	in, err := toStruct(req)
	if err != nil {
		return resp, err
	}
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return resp, err
	}
	err = fromStruct(out, &resp)
	return resp, err
}

func (c *Client) FetchInventory(ctx context.Context, p mockapi.InventoryParams) (mockapi.InventoryPage, error) {
	return invoke[mockapi.InventoryPage](ctx, c.cc, "FetchInventory", p)
}

func (c *Client) FetchExceptions(ctx context.Context, p mockapi.ExceptionParams) (mockapi.ExceptionPage, error) {
	return invoke[mockapi.ExceptionPage](ctx, c.cc, "FetchExceptions", p)
}

func (c *Client) FetchTreeRoots(ctx context.Context, seed uint32) ([]types.TreeNode, error) {
	resp, err := invoke[TreeNodesResponse](ctx, c.cc, "FetchTreeRoots", SeedRequest{Seed: seed})
	return resp.Nodes, err
}

func (c *Client) FetchTreeChildren(ctx context.Context, seed uint32, parentID string) ([]types.TreeNode, error) {
	resp, err := invoke[TreeNodesResponse](ctx, c.cc, "FetchTreeChildren", TreeChildrenRequest{Seed: seed, ParentID: parentID})
	return resp.Nodes, err
}

func (c *Client) SearchPickers(ctx context.Context, seed uint32, q string) ([]types.Picker, error) {
	resp, err := invoke[PickersResponse](ctx, c.cc, "SearchPickers", SearchPickersRequest{Seed: seed, Query: q})
	return resp.Pickers, err
}

func (c *Client) ValidatePicker(ctx context.Context, seed uint32, pickerID, lineID string) (types.ActionResult, error) {
	return invoke[types.ActionResult](ctx, c.cc, "ValidatePicker", ValidatePickerRequest{Seed: seed, PickerID: pickerID, LineID: lineID})
}

func (c *Client) SubmitPicking(ctx context.Context, seed uint32, lines []types.SubmitLine) (types.SubmitResult, error) {
	return invoke[types.SubmitResult](ctx, c.cc, "SubmitPicking", SubmitPickingRequest{Seed: seed, Lines: lines})
}

func (c *Client) ExceptionAction(ctx context.Context, seed uint32, action types.ExceptionActionKind, id string) (types.ActionResult, error) {
	return invoke[types.ActionResult](ctx, c.cc, "ExceptionAction", ExceptionActionRequest{Seed: seed, Action: action, ID: id})
}

func (c *Client) FetchExceptionTimeline(ctx context.Context, seed uint32, id string) ([]types.TimelineEntry, error) {
	resp, err := invoke[TimelineResponse](ctx, c.cc, "FetchExceptionTimeline", TimelineRequest{Seed: seed, ID: id})
	return resp.Entries, err
}

// InventoryColumns has no context in Backend; it uses context.Background.
func (c *Client) InventoryColumns(columnSize int) ([]columns.Column, error) {
	resp, err := invoke[ColumnsResponse](context.Background(), c.cc, "InventoryColumns", ColumnsRequest{ColumnSize: columnSize})
	return resp.Columns, err
}
