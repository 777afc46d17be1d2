package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	scourthttp "github.com/shusiwoo/scourt/http"
	scourtslog "github.com/shusiwoo/scourt/slog"
)

// CLI defines the command-line interface.
type CLI struct {
	BaseURL string `help:"Portal base URL." env:"SCOURT_BASE_URL" default:"https://www.scourt.go.kr"`

	Serve   ServeCmd   `cmd:"" help:"Start the JSON API server."`
	Notices NoticesCmd `cmd:"" help:"Print a page of notice summaries as JSON."`
	Detail  DetailCmd  `cmd:"" help:"Print one notice's detail as JSON."`
}

// Dependencies are bound into command Run methods.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// ServeCmd starts the JSON API server.
type ServeCmd struct {
	Addr string `help:"Listen address." env:"SCOURT_ADDR" default:":8080"`
}

func (c *ServeCmd) Run(cli *CLI, deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))

	service := scourtslog.NewNoticeService(newService(cli), logger)
	server := scourthttp.NewServer(service)

	logger.Info("serving", "addr", c.Addr, "portal", cli.BaseURL)
	return http.ListenAndServe(c.Addr, server)
}

// NoticesCmd prints a page of notice summaries.
type NoticesCmd struct {
	Page  int `help:"Listing page number." default:"1"`
	Limit int `help:"Maximum rows to return." default:"10"`
}

func (c *NoticesCmd) Run(cli *CLI, deps *Dependencies) error {
	notices, err := newService(cli).Notices(deps.Ctx, c.Page, c.Limit)
	if err != nil {
		return err
	}
	return printJSON(deps.Stdout, notices)
}

// DetailCmd prints one notice's full detail.
type DetailCmd struct {
	ID string `arg:"" help:"Notice detail identifier (seq_id)."`
}

func (c *DetailCmd) Run(cli *CLI, deps *Dependencies) error {
	detail, err := newService(cli).NoticeDetail(deps.Ctx, c.ID)
	if err != nil {
		return err
	}
	return printJSON(deps.Stdout, detail)
}

func newService(cli *CLI) *scourthttp.NoticeService {
	return scourthttp.NewNoticeService(scourthttp.NewFetcher(), scourthttp.WithBaseURL(cli.BaseURL))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
