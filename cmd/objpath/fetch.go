package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"

	"github.com/signadot/objpath/fetch"
	"github.com/signadot/objpath/ir"

	"github.com/scott-cotton/cli"
)

func fetchMain(cfg *FetchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fetch.Parse(cc, args)
	if err != nil {
		cfg.Fetch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Base == "" || cfg.Endpoints == "" {
		return fmt.Errorf("%w: fetch requires -base and -endpoints", cli.ErrUsage)
	}
	eps, err := cfg.getObjFile(cc, cfg.Endpoints)
	if err != nil {
		return err
	}
	client, err := fetch.New(cfg.Base, eps)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		for _, name := range client.Endpoints() {
			fmt.Fprintln(cc.Out, name)
		}
		return nil
	}
	ps, err := params(args[1:])
	if err != nil {
		return err
	}
	req := &fetch.Request{
		Method:   cfg.Method,
		Endpoint: args[0],
		Params:   ps,
		Query:    url.Values(cfg.Query),
		Header:   http.Header{},
	}
	for k, vs := range cfg.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if cfg.Body != "" {
		req.Body, err = cfg.getObjFile(cc, cfg.Body)
		if err != nil {
			return err
		}
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	theLog.Debug("fetching", "endpoint", req.Endpoint, "method", req.Method)
	res, err := client.Do(ctx, req)
	if err != nil {
		return err
	}
	if res == nil {
		res = ir.Null()
	}
	return cfg.output(cc, res)
}
