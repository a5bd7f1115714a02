package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/web3-wallet/wallet-endpoint-tests/client"
	"github.com/web3-wallet/wallet-endpoint-tests/framework"
	"github.com/web3-wallet/wallet-endpoint-tests/wallettests"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultEnvFile = ".env"

	envBaseURL  = "WALLET_TEST_BASE_URL"
	envTimeout  = "WALLET_TEST_TIMEOUT"
	envUsername = "WALLET_TEST_USERNAME"
	envEmail    = "WALLET_TEST_EMAIL"
	envPassword = "WALLET_TEST_PASSWORD"
)

type commandParams struct {
	baseURL      string
	timeout      time.Duration
	requireLogin bool
	wait         time.Duration
	filters      framework.RegexFilters
	debug        bool
	debugAll     bool
	envFile      string
	credentials  wallettests.Credentials
}

// Read parses the command line. Settings not given as flags are taken from
// the environment, after loading the env file if there is one, and otherwise
// keep their built-in defaults.
func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the wallet backend")
	fs.DurationVar(&c.timeout, "timeout", client.DefaultTimeout, "default timeout for each request")
	fs.BoolVar(&c.requireLogin, "require-login", false, "log in before running and stop if that fails")
	fs.DurationVar(&c.wait, "wait", 0, "wait up to this long for the backend to come up")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select steps to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select steps not to run")
	fs.BoolVar(&c.debug, "debug", false, "show request/response logs for failed steps")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show request/response logs for all steps")
	fs.StringVar(&c.envFile, "env-file", defaultEnvFile, "file of environment variables to load")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}

	if err := godotenv.Load(c.envFile); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) || c.envFile != defaultEnvFile {
			fmt.Fprintf(os.Stderr, "Cannot load %s: %s\n", c.envFile, err)
			return false
		}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := os.Getenv(envBaseURL); v != "" && !set["url"] {
		c.baseURL = v
	}
	if v := os.Getenv(envTimeout); v != "" && !set["timeout"] {
		d, err := parseTimeout(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid %s: %s\n", envTimeout, err)
			return false
		}
		c.timeout = d
	}
	if c.timeout <= 0 {
		fmt.Fprintln(os.Stderr, "timeout must be positive")
		return false
	}

	c.credentials = wallettests.DefaultCredentials
	if v := os.Getenv(envUsername); v != "" {
		c.credentials.Username = v
	}
	if v := os.Getenv(envEmail); v != "" {
		c.credentials.Email = v
	}
	if v := os.Getenv(envPassword); v != "" {
		c.credentials.Password = v
	}
	return true
}

// parseTimeout accepts a Go duration or a plain number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}
