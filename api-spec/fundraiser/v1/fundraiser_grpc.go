package fundraiserv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	FundraiserService_Init_FullMethodName             = "/fundraiser.v1.FundraiserService/Init"
	FundraiserService_Donate_FullMethodName           = "/fundraiser.v1.FundraiserService/Donate"
	FundraiserService_GetDonationCount_FullMethodName = "/fundraiser.v1.FundraiserService/GetDonationCount"
	FundraiserService_GetFundsRaised_FullMethodName   = "/fundraiser.v1.FundraiserService/GetFundsRaised"
	FundraiserService_Deposit_FullMethodName          = "/fundraiser.v1.FundraiserService/Deposit"
	FundraiserService_ListDonations_FullMethodName    = "/fundraiser.v1.FundraiserService/ListDonations"
	FundraiserService_GetStats_FullMethodName         = "/fundraiser.v1.FundraiserService/GetStats"
)

// FundraiserServiceClient is the client API for FundraiserService service.
type FundraiserServiceClient interface {
	Init(ctx context.Context, in *InitRequest, opts ...grpc.CallOption) (*InitResponse, error)
	Donate(ctx context.Context, in *DonateRequest, opts ...grpc.CallOption) (*DonateResponse, error)
	GetDonationCount(ctx context.Context, in *GetDonationCountRequest, opts ...grpc.CallOption) (*GetDonationCountResponse, error)
	GetFundsRaised(ctx context.Context, in *GetFundsRaisedRequest, opts ...grpc.CallOption) (*GetFundsRaisedResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	ListDonations(ctx context.Context, in *ListDonationsRequest, opts ...grpc.CallOption) (*ListDonationsResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
}

type fundraiserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFundraiserServiceClient(cc grpc.ClientConnInterface) FundraiserServiceClient {
	return &fundraiserServiceClient{cc}
}

func (c *fundraiserServiceClient) Init(ctx context.Context, in *InitRequest, opts ...grpc.CallOption) (*InitResponse, error) {
	out := new(InitResponse)
	err := c.cc.Invoke(ctx, FundraiserService_Init_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fundraiserServiceClient) Donate(ctx context.Context, in *DonateRequest, opts ...grpc.CallOption) (*DonateResponse, error) {
	out := new(DonateResponse)
	err := c.cc.Invoke(ctx, FundraiserService_Donate_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fundraiserServiceClient) GetDonationCount(ctx context.Context, in *GetDonationCountRequest, opts ...grpc.CallOption) (*GetDonationCountResponse, error) {
	out := new(GetDonationCountResponse)
	err := c.cc.Invoke(ctx, FundraiserService_GetDonationCount_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fundraiserServiceClient) GetFundsRaised(ctx context.Context, in *GetFundsRaisedRequest, opts ...grpc.CallOption) (*GetFundsRaisedResponse, error) {
	out := new(GetFundsRaisedResponse)
	err := c.cc.Invoke(ctx, FundraiserService_GetFundsRaised_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fundraiserServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, FundraiserService_Deposit_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fundraiserServiceClient) ListDonations(ctx context.Context, in *ListDonationsRequest, opts ...grpc.CallOption) (*ListDonationsResponse, error) {
	out := new(ListDonationsResponse)
	err := c.cc.Invoke(ctx, FundraiserService_ListDonations_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fundraiserServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	out := new(GetStatsResponse)
	err := c.cc.Invoke(ctx, FundraiserService_GetStats_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FundraiserServiceServer is the server API for FundraiserService service.
// All implementations must embed UnimplementedFundraiserServiceServer
// for forward compatibility
type FundraiserServiceServer interface {
	Init(context.Context, *InitRequest) (*InitResponse, error)
	Donate(context.Context, *DonateRequest) (*DonateResponse, error)
	GetDonationCount(context.Context, *GetDonationCountRequest) (*GetDonationCountResponse, error)
	GetFundsRaised(context.Context, *GetFundsRaisedRequest) (*GetFundsRaisedResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	ListDonations(context.Context, *ListDonationsRequest) (*ListDonationsResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	mustEmbedUnimplementedFundraiserServiceServer()
}

// UnimplementedFundraiserServiceServer must be embedded to have forward compatible implementations.
type UnimplementedFundraiserServiceServer struct {
}

func (UnimplementedFundraiserServiceServer) Init(context.Context, *InitRequest) (*InitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Init not implemented")
}
func (UnimplementedFundraiserServiceServer) Donate(context.Context, *DonateRequest) (*DonateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Donate not implemented")
}
func (UnimplementedFundraiserServiceServer) GetDonationCount(context.Context, *GetDonationCountRequest) (*GetDonationCountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDonationCount not implemented")
}
func (UnimplementedFundraiserServiceServer) GetFundsRaised(context.Context, *GetFundsRaisedRequest) (*GetFundsRaisedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFundsRaised not implemented")
}
func (UnimplementedFundraiserServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedFundraiserServiceServer) ListDonations(context.Context, *ListDonationsRequest) (*ListDonationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDonations not implemented")
}
func (UnimplementedFundraiserServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedFundraiserServiceServer) mustEmbedUnimplementedFundraiserServiceServer() {}

func RegisterFundraiserServiceServer(s grpc.ServiceRegistrar, srv FundraiserServiceServer) {
	s.RegisterService(&FundraiserService_ServiceDesc, srv)
}

func _FundraiserService_Init_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).Init(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_Init_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).Init(ctx, req.(*InitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FundraiserService_Donate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DonateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).Donate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_Donate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).Donate(ctx, req.(*DonateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FundraiserService_GetDonationCount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDonationCountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).GetDonationCount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_GetDonationCount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).GetDonationCount(ctx, req.(*GetDonationCountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FundraiserService_GetFundsRaised_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFundsRaisedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).GetFundsRaised(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_GetFundsRaised_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).GetFundsRaised(ctx, req.(*GetFundsRaisedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FundraiserService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FundraiserService_ListDonations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDonationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).ListDonations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_ListDonations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).ListDonations(ctx, req.(*ListDonationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FundraiserService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FundraiserServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FundraiserService_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FundraiserServiceServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FundraiserService_ServiceDesc is the grpc.ServiceDesc for FundraiserService service.
var FundraiserService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fundraiser.v1.FundraiserService",
	HandlerType: (*FundraiserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Init",
			Handler:    _FundraiserService_Init_Handler,
		},
		{
			MethodName: "Donate",
			Handler:    _FundraiserService_Donate_Handler,
		},
		{
			MethodName: "GetDonationCount",
			Handler:    _FundraiserService_GetDonationCount_Handler,
		},
		{
			MethodName: "GetFundsRaised",
			Handler:    _FundraiserService_GetFundsRaised_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _FundraiserService_Deposit_Handler,
		},
		{
			MethodName: "ListDonations",
			Handler:    _FundraiserService_ListDonations_Handler,
		},
		{
			MethodName: "GetStats",
			Handler:    _FundraiserService_GetStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fundraiser/v1",
}

// withCodec makes every call use the json codec, unless otherwise specified
// by the caller.
func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
