package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
)

var accountFlag = &cli.StringFlag{
	Name:     "account",
	Usage:    "the donating account key, ie. account-hash-<hex>",
	Required: true,
}

var (
	initfundraiser = cli.Command{
		Name:   "init",
		Usage:  "create the fundraising purse and the donation ledger",
		Action: initAction,
	}
	donate = cli.Command{
		Name:   "donate",
		Usage:  "record a donation and get the purse capability to deposit to",
		Flags:  []cli.Flag{accountFlag},
		Action: donateAction,
	}
	count = cli.Command{
		Name:   "count",
		Usage:  "get the number of donations made by an account",
		Flags:  []cli.Flag{accountFlag},
		Action: countAction,
	}
	funds = cli.Command{
		Name:   "funds",
		Usage:  "get the balance of the fundraising purse",
		Action: fundsAction,
	}
	deposit = cli.Command{
		Name:  "deposit",
		Usage: "deposit an amount into a purse through its capability",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "purse",
				Usage:    "the purse capability returned by donate",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "the integer amount to deposit",
				Required: true,
			},
		},
		Action: depositAction,
	}
	donations = cli.Command{
		Name:  "donations",
		Usage: "list donors with their donation count",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "page",
				Usage: "the number of the page to list, starting from 1",
			},
			&cli.Int64Flag{
				Name:  "page_size",
				Usage: "the number of donors per page",
			},
		},
		Action: donationsAction,
	}
	stats = cli.Command{
		Name:   "stats",
		Usage:  "get donors, total donations and funds raised",
		Action: statsAction,
	}
)

func initAction(ctx *cli.Context) error {
	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := client.Init(
		context.Background(), &fundraiserv1.InitRequest{},
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("fundraiser initialized")
	return nil
}

func donateAction(ctx *cli.Context) error {
	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.Donate(
		context.Background(), &fundraiserv1.DonateRequest{
			DonatingAccountKey: ctx.String("account"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func countAction(ctx *cli.Context) error {
	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetDonationCount(
		context.Background(), &fundraiserv1.GetDonationCountRequest{
			DonatingAccountKey: ctx.String("account"),
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func fundsAction(ctx *cli.Context) error {
	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetFundsRaised(
		context.Background(), &fundraiserv1.GetFundsRaisedRequest{},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func depositAction(ctx *cli.Context) error {
	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := client.Deposit(
		context.Background(), &fundraiserv1.DepositRequest{
			Purse:  ctx.String("purse"),
			Amount: ctx.String("amount"),
		},
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("deposited", ctx.String("amount"))
	return nil
}

func donationsAction(ctx *cli.Context) error {
	page, err := pageFromFlags(ctx.Int64("page"), ctx.Int64("page_size"))
	if err != nil {
		return err
	}

	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.ListDonations(
		context.Background(), &fundraiserv1.ListDonationsRequest{Page: page},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func statsAction(ctx *cli.Context) error {
	client, cleanup, err := getFundraiserClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetStats(
		context.Background(), &fundraiserv1.GetStatsRequest{},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

// pageFromFlags returns a nil page, meaning all donations, if no flag is set.
func pageFromFlags(number, size int64) (*fundraiserv1.Page, error) {
	if number < 0 || size < 0 {
		return nil, errors.New("page and page_size must not be negative")
	}
	if number == 0 && size == 0 {
		return nil, nil
	}
	return &fundraiserv1.Page{PageNumber: number, PageSize: size}, nil
}
