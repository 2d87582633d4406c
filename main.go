package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/kvedit/internal/app"
	"github.com/atomicstack/kvedit/internal/config"
	"github.com/atomicstack/kvedit/internal/logging"
	"github.com/atomicstack/kvedit/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	result, err := app.Run(runtimeCfg.App)
	if err == nil {
		err = finish(os.Stdout, result)
	}
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// finish writes the pairs to out when the user asked for them on exit. It
// runs after the terminal has been restored.
func finish(out io.Writer, result app.Result) error {
	if !result.PrintJSON || result.State == nil {
		return nil
	}
	return result.State.WriteJSON(out)
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["stdout"] = probeStdout()
	return payload
}

// stdoutTTY records whether stdout is a terminal and its size. When it is
// not, the JSON printed on exit is going to a pipe or file.
type stdoutTTY struct {
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func probeStdout() stdoutTTY {
	fd := int(os.Stdout.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return stdoutTTY{}
	}
	probe := stdoutTTY{IsTerminal: true}
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width = width
	probe.Height = height
	return probe
}
