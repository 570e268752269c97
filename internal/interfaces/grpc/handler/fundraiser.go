package grpchandler

import (
	"context"

	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fundraiserHandler struct {
	fundraiserv1.UnimplementedFundraiserServiceServer

	fundraiserSvc application.FundraiserService
}

// NewFundraiserHandler is a constructor function returning a
// FundraiserServiceServer.
func NewFundraiserHandler(
	fundraiserSvc application.FundraiserService,
) fundraiserv1.FundraiserServiceServer {
	return newFundraiserHandler(fundraiserSvc)
}

func newFundraiserHandler(
	fundraiserSvc application.FundraiserService,
) *fundraiserHandler {
	return &fundraiserHandler{fundraiserSvc: fundraiserSvc}
}

func (h *fundraiserHandler) Init(
	ctx context.Context, req *fundraiserv1.InitRequest,
) (*fundraiserv1.InitResponse, error) {
	return h.init(ctx, req)
}

func (h *fundraiserHandler) Donate(
	ctx context.Context, req *fundraiserv1.DonateRequest,
) (*fundraiserv1.DonateResponse, error) {
	return h.donate(ctx, req)
}

func (h *fundraiserHandler) GetDonationCount(
	ctx context.Context, req *fundraiserv1.GetDonationCountRequest,
) (*fundraiserv1.GetDonationCountResponse, error) {
	return h.getDonationCount(ctx, req)
}

func (h *fundraiserHandler) GetFundsRaised(
	ctx context.Context, req *fundraiserv1.GetFundsRaisedRequest,
) (*fundraiserv1.GetFundsRaisedResponse, error) {
	return h.getFundsRaised(ctx, req)
}

func (h *fundraiserHandler) Deposit(
	ctx context.Context, req *fundraiserv1.DepositRequest,
) (*fundraiserv1.DepositResponse, error) {
	return h.deposit(ctx, req)
}

func (h *fundraiserHandler) ListDonations(
	ctx context.Context, req *fundraiserv1.ListDonationsRequest,
) (*fundraiserv1.ListDonationsResponse, error) {
	return h.listDonations(ctx, req)
}

func (h *fundraiserHandler) GetStats(
	ctx context.Context, req *fundraiserv1.GetStatsRequest,
) (*fundraiserv1.GetStatsResponse, error) {
	return h.getStats(ctx, req)
}

func (h *fundraiserHandler) init(
	ctx context.Context, _ *fundraiserv1.InitRequest,
) (*fundraiserv1.InitResponse, error) {
	if err := h.fundraiserSvc.Init(ctx); err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.InitResponse{}, nil
}

func (h *fundraiserHandler) donate(
	ctx context.Context, req *fundraiserv1.DonateRequest,
) (*fundraiserv1.DonateResponse, error) {
	key, err := parseAccountKey(req.GetDonatingAccountKey())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	capability, err := h.fundraiserSvc.Donate(ctx, key)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.DonateResponse{Purse: capability.String()}, nil
}

func (h *fundraiserHandler) getDonationCount(
	ctx context.Context, req *fundraiserv1.GetDonationCountRequest,
) (*fundraiserv1.GetDonationCountResponse, error) {
	key, err := parseAccountKey(req.GetDonatingAccountKey())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	count, err := h.fundraiserSvc.GetDonationCount(ctx, key)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.GetDonationCountResponse{DonationCount: count}, nil
}

func (h *fundraiserHandler) getFundsRaised(
	ctx context.Context, _ *fundraiserv1.GetFundsRaisedRequest,
) (*fundraiserv1.GetFundsRaisedResponse, error) {
	funds, err := h.fundraiserSvc.GetFundsRaised(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.GetFundsRaisedResponse{
		FundsRaised: funds.String(),
	}, nil
}

func (h *fundraiserHandler) deposit(
	ctx context.Context, req *fundraiserv1.DepositRequest,
) (*fundraiserv1.DepositResponse, error) {
	capability, err := application.ParseDepositCapability(req.GetPurse())
	if err != nil {
		return nil, toStatusError(err)
	}
	amount, err := parseAmount(req.GetAmount())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.fundraiserSvc.Deposit(ctx, capability, amount); err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.DepositResponse{}, nil
}

func (h *fundraiserHandler) listDonations(
	ctx context.Context, req *fundraiserv1.ListDonationsRequest,
) (*fundraiserv1.ListDonationsResponse, error) {
	var page domain.Page
	if p := req.GetPage(); p != nil {
		page = domain.NewPage(p.GetPageNumber(), p.GetPageSize())
		if err := domain.ValidatePage(page); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	donations, err := h.fundraiserSvc.ListDonations(ctx, page)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.ListDonationsResponse{
		Donations: donationList(donations).toProto(),
	}, nil
}

func (h *fundraiserHandler) getStats(
	ctx context.Context, _ *fundraiserv1.GetStatsRequest,
) (*fundraiserv1.GetStatsResponse, error) {
	stats, err := h.fundraiserSvc.GetStats(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.GetStatsResponse{
		Donors:         uint64(stats.Donors),
		TotalDonations: stats.TotalDonations,
		FundsRaised:    stats.FundsRaised.String(),
	}, nil
}
