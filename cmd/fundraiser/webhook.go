package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
)

var (
	webhook = cli.Command{
		Name:  "webhook",
		Usage: "add, remove or list webhooks",
		Subcommands: []*cli.Command{
			webhookAddCmd, webhookRemoveCmd, webhookListCmd,
		},
	}

	webhookAddCmd = &cli.Command{
		Name:  "add",
		Usage: "add a webhook registered for some action",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "endpoint",
				Usage:    "the endpoint where to notify the webhook",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "secret",
				Usage: "the eventual secret to authenticate requests",
			},
			&cli.StringFlag{
				Name:  "action",
				Usage: "the action for which the webhook gets notified: donation_recorded, funds_deposited or all",
				Value: "all",
			},
		},
		Action: addWebhookAction,
	}
	webhookRemoveCmd = &cli.Command{
		Name:  "remove",
		Usage: "remove a webhook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "the id of the webhook to remove",
				Required: true,
			},
		},
		Action: removeWebhookAction,
	}
	webhookListCmd = &cli.Command{
		Name:  "list",
		Usage: "list all webhooks registered for some action",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "action",
				Usage: "the action to filter hooks by",
				Value: "all",
			},
		},
		Action: listWebhooksAction,
	}
)

func addWebhookAction(ctx *cli.Context) error {
	action, err := fundraiserv1.ParseActionType(ctx.String("action"))
	if err != nil {
		return err
	}

	client, cleanup, err := getWebhookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.AddWebhook(
		context.Background(), &fundraiserv1.AddWebhookRequest{
			Endpoint: ctx.String("endpoint"),
			Action:   action,
			Secret:   ctx.String("secret"),
		},
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("hook id:", reply.GetId())
	return nil
}

func removeWebhookAction(ctx *cli.Context) error {
	client, cleanup, err := getWebhookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	hookID := ctx.String("id")

	if _, err := client.RemoveWebhook(
		context.Background(), &fundraiserv1.RemoveWebhookRequest{
			Id: hookID,
		},
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("removed hook with id:", hookID)
	return nil
}

func listWebhooksAction(ctx *cli.Context) error {
	action, err := fundraiserv1.ParseActionType(ctx.String("action"))
	if err != nil {
		return err
	}

	client, cleanup, err := getWebhookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.ListWebhooks(
		context.Background(), &fundraiserv1.ListWebhooksRequest{
			Action: action,
		},
	)
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}
