package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WangWilly/xRest/pkgs/clipkg/commandline"
	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/asyncclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/clients/twitterclient"
	"github.com/WangWilly/xRest/pkgs/commonpkg/helpers/syscfghelper"
	"github.com/WangWilly/xRest/pkgs/commonpkg/services"
	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

func main() {
	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var paramArgs commandline.ParamArgs
	var paramsFile string
	var batchFile string
	var maxWorkers int
	var confArg bool
	var isDebug bool
	var listArg bool
	var journalArg bool
	var statsArg bool
	var pruneArg time.Duration
	var limit int
	var noVerify bool
	var rawOut bool
	var timeout time.Duration

	flag.BoolVar(&confArg, "conf", false, "reconfigure")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.Var(&paramArgs, "p", "request param as key=value, repeatable")
	flag.StringVar(&paramsFile, "params", "", "YAML or JSON file of request params")
	flag.StringVar(&batchFile, "batch", "", "YAML or JSON list of param sets, one call each")
	flag.IntVar(&maxWorkers, "workers", 4, "calls in flight with -batch")
	flag.BoolVar(&listArg, "list", false, "list every endpoint and exit")
	flag.BoolVar(&journalArg, "journal", false, "show journaled calls, optionally of the endpoint given as argument")
	flag.BoolVar(&statsArg, "stats", false, "show journaled call counts per endpoint")
	flag.DurationVar(&pruneArg, "prune", 0, "delete journaled calls older than the given age")
	flag.IntVar(&limit, "limit", 20, "number of journal rows to show")
	flag.BoolVar(&noVerify, "no-verify", false, "skip credential verification")
	flag.BoolVar(&rawOut, "raw", false, "print the response body as received")
	flag.DurationVar(&timeout, "timeout", 0, "give up waiting after this long")
	flag.Usage = usage
	flag.Parse()

	if listArg {
		printEndpoints()
		return
	}

	////////////////////////////////////////////////////////////////////////////
	// System Setup
	////////////////////////////////////////////////////////////////////////////
	helper, err := syscfghelper.New(syscfghelper.CliParams{
		IsDebug:       isDebug,
		ConfOverWrite: confArg,
	})
	if err != nil {
		log.Fatalln("failed to set up:", err)
	}
	defer helper.Close()
	if confArg {
		log.Infoln("config done")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// listen signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)
	go func() {
		sig := <-sigChan
		log.Warnln("[listener] caught signal:", sig)
		cancel()
	}()

	////////////////////////////////////////////////////////////////////////////
	// Journal Commands
	////////////////////////////////////////////////////////////////////////////
	needsNetwork := !journalArg && !statsArg && pruneArg == 0
	transport, client, err := helper.GetMainClient(ctx, needsNetwork && !noVerify)
	if err != nil {
		log.Fatalln("failed to login:", err)
	}
	if isDebug {
		defer transport.ReportRequestCount()
	}

	svc, err := helper.GetCallService(client)
	if err != nil {
		log.Fatalln("failed to open call journal:", err)
	}

	switch {
	case journalArg:
		exitOn(showJournal(ctx, svc, flag.Arg(0), limit))
		return
	case statsArg:
		exitOn(showStats(ctx, svc))
		return
	case pruneArg != 0:
		n, err := svc.Prune(ctx, pruneArg)
		exitOn(err)
		fmt.Printf("pruned %d calls\n", n)
		return
	}

	////////////////////////////////////////////////////////////////////////////
	// Endpoint Call
	////////////////////////////////////////////////////////////////////////////
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	params := paramArgs.Params()
	if paramsFile != "" {
		fileParams, err := commandline.LoadParamsFile(paramsFile)
		if err != nil {
			log.Fatalln("failed to load params:", err)
		}
		params = commandline.MergeParams(fileParams, params)
	}

	ep, err := asyncclient.Lookup(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	log.Debugf("calling %s with %v", ep, params)

	if batchFile != "" {
		batch, err := commandline.LoadParamsBatch(batchFile)
		if err != nil {
			log.Fatalln("failed to load batch:", err)
		}
		for i := range batch {
			batch[i] = commandline.MergeParams(batch[i], params)
		}
		failed := 0
		for _, outcome := range svc.RunBatch(ctx, ep, batch, maxWorkers) {
			fmt.Println(color.FgGray.Render(outcome.Params))
			if outcome.Err != nil {
				failed++
				printError(outcome.Err)
				continue
			}
			printResult(transport, ep, outcome.Result, rawOut)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	res, err := svc.Run(ctx, ep, params)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	printResult(transport, ep, res, rawOut)
}

////////////////////////////////////////////////////////////////////////////////

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "xrest - X v1.1 REST client")
	fmt.Fprintln(out, "usage: xrest [flags] <endpoint>")
	fmt.Fprintln(out, "       xrest -p screen_name=someone getUsersShow")
	flag.PrintDefaults()
}

func exitOn(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, services.ErrJournalDisabled) {
		log.Fatalln("enable the journal in conf.yaml or with XREST_JOURNAL_ENABLED=true")
	}
	log.Fatalln(err)
}

func printEndpoints() {
	for _, ep := range asyncclient.Endpoints() {
		line := fmt.Sprintf("%-42s %-5s %s", ep.Name, ep.Method, ep.Path)
		if ep.Guard.Kind != asyncclient.GUARD_NONE {
			line += color.FgGray.Render(" [" + ep.Guard.Kind.String() + "]")
		}
		fmt.Println(line)
	}
}

func printResult(transport *twitterclient.Client, ep asyncclient.Endpoint, res *asyncclient.Result, raw bool) {
	if res.Response == nil {
		log.Infoln(color.FgYellow.Render("answered locally, no request sent"))
	} else {
		log.Infof("%s %s in %s", color.FgGreen.Render(res.Response.Status), ep, res.Response.Duration)
		if limit, ok := transport.RateLimit(transport.EndpointPath(ep.Path)); ok {
			log.Debugf("rate limit: %d/%d, resets at %s", limit.Remaining, limit.Limit, limit.ResetTime.Format(time.RFC3339))
		}
	}

	if raw {
		os.Stdout.Write(res.Body())
		fmt.Println()
		return
	}
	fmt.Println(gjson.GetBytes(res.Body(), "@pretty").String())
}

func printError(err error) {
	var reqErr *asyncclient.RequestError
	if errors.As(err, &reqErr) && reqErr.Response != nil {
		fmt.Fprintln(os.Stderr, color.FgRed.Render(reqErr.Response.Status))
		if len(reqErr.Response.Body) > 0 {
			fmt.Fprintln(os.Stderr, gjson.GetBytes(reqErr.Response.Body, "@pretty").String())
		}
	}
	fmt.Fprintln(os.Stderr, color.FgRed.Render(err.Error()))
}

func showJournal(ctx context.Context, svc *services.CallService, endpoint string, limit int) error {
	records, err := svc.Recent(ctx, endpoint, limit)
	if err != nil {
		return err
	}
	for _, rec := range records {
		status := fmt.Sprint(rec.StatusCode)
		switch {
		case rec.ShortCircuited:
			status = color.FgYellow.Render("local")
		case rec.Failed():
			status = color.FgRed.Render(status)
		default:
			status = color.FgGreen.Render(status)
		}
		fmt.Printf("%s  %-36s %s %6dms  %s\n",
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.Endpoint,
			status,
			rec.DurationMs,
			rec.Params,
		)
		if rec.Failed() {
			fmt.Println("    " + color.FgRed.Render(rec.Error.String))
		}
	}
	return nil
}

func showStats(ctx context.Context, svc *services.CallService) error {
	counts, err := svc.EndpointStats(ctx)
	if err != nil {
		return err
	}
	for _, c := range counts {
		fmt.Printf("%6d  %s\n", c.Count, c.Endpoint)
	}
	return nil
}
