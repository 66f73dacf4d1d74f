package terminal

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "pizzapos.Terminal"

// TerminalServer is the server API of the pizzapos.Terminal service.
type TerminalServer interface {
	Snapshot(context.Context, *Empty) (*SnapshotResponse, error)
	Menu(context.Context, *Empty) (*MenuResponse, error)
	AddPizza(context.Context, *AddPizzaRequest) (*LineResponse, error)
	AddBeverage(context.Context, *AddBeverageRequest) (*LineResponse, error)
	SetQuantity(context.Context, *SetQuantityRequest) (*LineResponse, error)
	Increment(context.Context, *LineRequest) (*LineResponse, error)
	Decrement(context.Context, *LineRequest) (*LineResponse, error)
	RemoveItem(context.Context, *LineRequest) (*RemoveItemResponse, error)
	Clear(context.Context, *Empty) (*Empty, error)
	Receipt(context.Context, *Empty) (*ReceiptResponse, error)
	PlaceOrder(context.Context, *Empty) (*PlaceOrderResponse, error)
	Refresh(context.Context, *Empty) (*Empty, error)
}

// Service exposes a Terminal over gRPC.
type Service struct {
	terminal *Terminal
	logger   *zap.Logger
}

var _ TerminalServer = (*Service)(nil)

// NewService wraps a running terminal.
func NewService(t *Terminal, logger *zap.Logger) *Service {
	return &Service{terminal: t, logger: logger}
}

// Register adds the service to a gRPC server. It matches pos.RegisterFunc.
func (s *Service) Register(srv *grpc.Server) {
	srv.RegisterService(&ServiceDesc, s)
}

// mapError converts an error into a gRPC status. Backend failures become
// Unavailable; rejected commands keep their code.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	if errors.Is(err, ErrStopped) {
		return status.Error(codes.Unavailable, err.Error())
	}
	if IsBackendError(err) && !pos.IsCommandError(err) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return pos.MapCommandError(err)
}

func (s *Service) fail(method string, err error) error {
	mapped := mapError(err)
	if code := status.Code(mapped); code == codes.Internal || code == codes.Unavailable {
		s.logger.Error("call failed", zap.String("method", method), zap.Error(err))
	} else {
		s.logger.Debug("call rejected", zap.String("method", method), zap.Error(err))
	}
	return mapped
}

func (s *Service) Snapshot(ctx context.Context, _ *Empty) (*SnapshotResponse, error) {
	snap, err := s.terminal.Snapshot(ctx)
	if err != nil {
		return nil, s.fail("Snapshot", err)
	}
	return snapshotResponse(snap), nil
}

func (s *Service) Menu(ctx context.Context, _ *Empty) (*MenuResponse, error) {
	catalog, err := s.terminal.Menu(ctx)
	if err != nil {
		return nil, s.fail("Menu", err)
	}
	return &MenuResponse{Pizzas: catalog.Pizzas, Beverages: catalog.Beverages, Toppings: catalog.Toppings}, nil
}

func (s *Service) AddPizza(ctx context.Context, req *AddPizzaRequest) (*LineResponse, error) {
	var size menu.Size
	if req.Size != "" {
		parsed, err := menu.ParseSize(req.Size)
		if err != nil {
			return nil, s.fail("AddPizza", err)
		}
		size = parsed
	}
	li, err := s.terminal.AddPizza(ctx, req.ItemID, size, req.Toppings)
	if err != nil {
		return nil, s.fail("AddPizza", err)
	}
	return &LineResponse{Line: lineFromItem(li)}, nil
}

func (s *Service) AddBeverage(ctx context.Context, req *AddBeverageRequest) (*LineResponse, error) {
	li, err := s.terminal.AddBeverage(ctx, req.ItemID)
	if err != nil {
		return nil, s.fail("AddBeverage", err)
	}
	return &LineResponse{Line: lineFromItem(li)}, nil
}

func (s *Service) SetQuantity(ctx context.Context, req *SetQuantityRequest) (*LineResponse, error) {
	li, err := s.terminal.SetQuantity(ctx, req.LineID, req.Quantity)
	if err != nil {
		return nil, s.fail("SetQuantity", err)
	}
	return &LineResponse{Line: lineFromItem(li)}, nil
}

func (s *Service) Increment(ctx context.Context, req *LineRequest) (*LineResponse, error) {
	li, err := s.terminal.Increment(ctx, req.LineID)
	if err != nil {
		return nil, s.fail("Increment", err)
	}
	return &LineResponse{Line: lineFromItem(li)}, nil
}

func (s *Service) Decrement(ctx context.Context, req *LineRequest) (*LineResponse, error) {
	li, err := s.terminal.Decrement(ctx, req.LineID)
	if err != nil {
		return nil, s.fail("Decrement", err)
	}
	return &LineResponse{Line: lineFromItem(li)}, nil
}

func (s *Service) RemoveItem(ctx context.Context, req *LineRequest) (*RemoveItemResponse, error) {
	removed, err := s.terminal.RemoveItem(ctx, req.LineID)
	if err != nil {
		return nil, s.fail("RemoveItem", err)
	}
	return &RemoveItemResponse{Removed: removed}, nil
}

func (s *Service) Clear(ctx context.Context, _ *Empty) (*Empty, error) {
	if err := s.terminal.Clear(ctx); err != nil {
		return nil, s.fail("Clear", err)
	}
	return &Empty{}, nil
}

func (s *Service) Receipt(ctx context.Context, _ *Empty) (*ReceiptResponse, error) {
	text, err := s.terminal.Receipt(ctx)
	if err != nil {
		return nil, s.fail("Receipt", err)
	}
	return &ReceiptResponse{Text: text}, nil
}

func (s *Service) PlaceOrder(ctx context.Context, _ *Empty) (*PlaceOrderResponse, error) {
	res, err := s.terminal.PlaceOrder(ctx)
	if err != nil {
		return nil, s.fail("PlaceOrder", err)
	}
	return &PlaceOrderResponse{Invoice: res.Invoice, OrderNo: res.OrderNo, NextOrderNo: res.NextOrderNo}, nil
}

func (s *Service) Refresh(ctx context.Context, _ *Empty) (*Empty, error) {
	if err := s.terminal.Refresh(ctx); err != nil {
		return nil, s.fail("Refresh", err)
	}
	return &Empty{}, nil
}

func unary[Req, Resp any](name string, call func(TerminalServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TerminalServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TerminalServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes pizzapos.Terminal for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TerminalServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Snapshot", TerminalServer.Snapshot),
		unary("Menu", TerminalServer.Menu),
		unary("AddPizza", TerminalServer.AddPizza),
		unary("AddBeverage", TerminalServer.AddBeverage),
		unary("SetQuantity", TerminalServer.SetQuantity),
		unary("Increment", TerminalServer.Increment),
		unary("Decrement", TerminalServer.Decrement),
		unary("RemoveItem", TerminalServer.RemoveItem),
		unary("Clear", TerminalServer.Clear),
		unary("Receipt", TerminalServer.Receipt),
		unary("PlaceOrder", TerminalServer.PlaceOrder),
		unary("Refresh", TerminalServer.Refresh),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pizzapos/terminal",
}
