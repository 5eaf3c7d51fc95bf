package mockapi_grpc_service

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/columns"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const ServiceName = "tablebench.mock.v1.MockBackend"

// Backend is implemented by mockapi.Service.
type Backend interface {
	FetchInventory(ctx context.Context, p mockapi.InventoryParams) (mockapi.InventoryPage, error)
	FetchExceptions(ctx context.Context, p mockapi.ExceptionParams) (mockapi.ExceptionPage, error)
	FetchTreeRoots(ctx context.Context, seed uint32) ([]types.TreeNode, error)
	FetchTreeChildren(ctx context.Context, seed uint32, parentID string) ([]types.TreeNode, error)
	SearchPickers(ctx context.Context, seed uint32, q string) ([]types.Picker, error)
	ValidatePicker(ctx context.Context, seed uint32, pickerID, lineID string) (types.ActionResult, error)
	SubmitPicking(ctx context.Context, seed uint32, lines []types.SubmitLine) (types.SubmitResult, error)
	ExceptionAction(ctx context.Context, seed uint32, action types.ExceptionActionKind, id string) (types.ActionResult, error)
	FetchExceptionTimeline(ctx context.Context, seed uint32, id string) ([]types.TimelineEntry, error)
	InventoryColumns(columnSize int) ([]columns.Column, error)
}

var _ Backend = (*mockapi.Service)(nil)

// MockBackendServer is the handler type registered with grpc.
type MockBackendServer interface {
	backend() Backend
}

// MockBackendService exposes a Backend over gRPC.
type MockBackendService struct {
	b Backend
}

func NewMockBackendService(b Backend) *MockBackendService {
	return &MockBackendService{b: b}
}

func (s *MockBackendService) backend() Backend {
	return s.b
}

// Register adds the service to a grpc server.
func Register(srv grpc.ServiceRegistrar, b Backend) {
	srv.RegisterService(&ServiceDesc, NewMockBackendService(b))
}

// NewServer builds a grpc server with the service registered and calls
// logged at debug level.
func NewServer(b Backend, logger *slog.Logger) *grpc.Server {
	var opts []grpc.ServerOption
	if logger != nil {
		opts = append(opts, grpc.UnaryInterceptor(loggingInterceptor(logger)))
	}
	s := grpc.NewServer(opts...)
	Register(s, b)
	return s
}

// ListenAndServe starts the gRPC server and stops it gracefully once ctx is
// done.
func ListenAndServe(ctx context.Context, b Backend, logger *slog.Logger, listenAddress string) error {
	lis, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}
	return Serve(ctx, b, logger, lis)
}

func Serve(ctx context.Context, b Backend, logger *slog.Logger, lis net.Listener) error {
	s := NewServer(b, logger)

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	return s.Serve(lis)
}

func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("[grpc] call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"elapsed", time.Since(start))
		return resp, err
	}
}

// toStatus maps backend errors onto grpc codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, types.ErrLoadChildren), errors.Is(err, types.ErrShuttingDown):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, types.ErrInvalidPage),
		errors.Is(err, types.ErrInvalidPageSize),
		errors.Is(err, types.ErrInvalidSortOrder),
		errors.Is(err, types.ErrUnsupportedSize),
		errors.Is(err, types.ErrUnsupportedColumnSize),
		errors.Is(err, types.ErrUnsupportedMode),
		errors.Is(err, types.ErrUnknownAction):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// unary adapts a typed call into a grpc method handler.
func unary[Req, Resp any](method string, call func(ctx context.Context, b Backend, req Req) (Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			b := srv.(MockBackendServer).backend()
			invoke := func(ctx context.Context, req any) (any, error) {
				var r Req
				if err := fromStruct(req.(*structpb.Struct), &r); err != nil {
					return nil, status.Error(codes.InvalidArgument, err.Error())
				}
				out, err := call(ctx, b, r)
				if err != nil {
					return nil, toStatus(err)
				}
				body, err := toStruct(out)
				if err != nil {
					return nil, status.Error(codes.Internal, err.Error())
				}
				return body, nil
			}
			if interceptor == nil {
				return invoke(ctx, in)
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}, invoke)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MockBackendServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("FetchInventory", func(ctx context.Context, b Backend, p mockapi.InventoryParams) (mockapi.InventoryPage, error) {
			return b.FetchInventory(ctx, p)
		}),
		unary("FetchExceptions", func(ctx context.Context, b Backend, p mockapi.ExceptionParams) (mockapi.ExceptionPage, error) {
			return b.FetchExceptions(ctx, p)
		}),
		unary("FetchTreeRoots", func(ctx context.Context, b Backend, r SeedRequest) (TreeNodesResponse, error) {
			nodes, err := b.FetchTreeRoots(ctx, r.Seed)
			return TreeNodesResponse{Nodes: nodes}, err
		}),
		unary("FetchTreeChildren", func(ctx context.Context, b Backend, r TreeChildrenRequest) (TreeNodesResponse, error) {
			nodes, err := b.FetchTreeChildren(ctx, r.Seed, r.ParentID)
			return TreeNodesResponse{Nodes: nodes}, err
		}),
		unary("SearchPickers", func(ctx context.Context, b Backend, r SearchPickersRequest) (PickersResponse, error) {
			pickers, err := b.SearchPickers(ctx, r.Seed, r.Query)
			return PickersResponse{Pickers: pickers}, err
		}),
		unary("ValidatePicker", func(ctx context.Context, b Backend, r ValidatePickerRequest) (types.ActionResult, error) {
			return b.ValidatePicker(ctx, r.Seed, r.PickerID, r.LineID)
		}),
		unary("SubmitPicking", func(ctx context.Context, b Backend, r SubmitPickingRequest) (types.SubmitResult, error) {
			return b.SubmitPicking(ctx, r.Seed, r.Lines)
		}),
		unary("ExceptionAction", func(ctx context.Context, b Backend, r ExceptionActionRequest) (types.ActionResult, error) {
			return b.ExceptionAction(ctx, r.Seed, r.Action, r.ID)
		}),
		unary("FetchExceptionTimeline", func(ctx context.Context, b Backend, r TimelineRequest) (TimelineResponse, error) {
			entries, err := b.FetchExceptionTimeline(ctx, r.Seed, r.ID)
			return TimelineResponse{Entries: entries}, err
		}),
		unary("InventoryColumns", func(_ context.Context, b Backend, r ColumnsRequest) (ColumnsResponse, error) {
			cols, err := b.InventoryColumns(r.ColumnSize)
			return ColumnsResponse{Columns: cols}, err
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tablebench/mock/v1/mock.proto",
}
