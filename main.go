package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/framework"
	"github.com/web3-wallet/wallet-endpoint-tests/wallettests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(params))
}

func run(params commandParams) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	fmt.Println("Starting wallet endpoint tests")
	fmt.Printf("Base URL: %s\n", params.baseURL)
	fmt.Printf("Timeout: %s\n", params.timeout)

	if params.wait > 0 {
		if err := client.AwaitService(ctx, params.baseURL, params.wait, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Wallet backend is not reachable: %s\n", err)
			return 1
		}
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	executor := client.NewExecutor(params.baseURL, params.timeout, mainDebugLogger)
	harness := wallettests.NewHarness(executor, params.credentials)

	controller := &framework.Controller{
		Suites:      harness.Suites(),
		Filter:      params.filters.AsFilter,
		DebugLogger: mainDebugLogger,
		TestLogger: &framework.ConsoleTestLogger{
			Out:                  os.Stdout,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		PrintSummary: func(results framework.Results) {
			fmt.Println()
			framework.PrintResults(os.Stdout, results)
		},
	}
	if params.requireLogin {
		controller.PreRun = harness.PreRunLogin
	}

	_, code := controller.Run(ctx)
	return code
}
