/*------------------------------------------------------------------------------
* main.go : aebench command line front end
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : runs one acquisition scenario against the behavioral engine and
*         reports per-channel results; flag usage strings are pulled out
*         of a help[] table by key the way the teacher's receiver console
*         does it, rather than inlined at each flag.*Var call.
*-----------------------------------------------------------------------------*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"gnssacq/acq"
)

var help = []string{
	"aebench -scenario file [-capture port] [-baud rate] [-push url] [-v]",
	"",
	"options",
	"  -scenario file   YAML scenario describing channels to search",
	"  -capture  port   serial port to pull live samples from (optional)",
	"  -baud     rate   capture baud rate (default 921600)",
	"  -push     url    pushgateway URL to ship run metrics to (optional)",
	"  -v               verbose trace output",
}

// searchHelp returns the help line starting with key, or "" if none match.
func searchHelp(key string) string {
	for _, line := range help {
		if strings.HasPrefix(strings.TrimSpace(line), key) {
			return line
		}
	}
	return ""
}

func printusage() {
	for _, line := range help {
		fmt.Fprintln(os.Stderr, line)
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("aebench", flag.ContinueOnError)
	fs.Usage = printusage

	scenarioPath := fs.String("scenario", "", searchHelp("-scenario"))
	capturePort := fs.String("capture", "", searchHelp("-capture"))
	captureBaud := fs.Int("baud", 921600, searchHelp("-baud"))
	pushURL := fs.String("push", "", searchHelp("-push"))
	verbose := fs.Bool("v", false, searchHelp("-v"))

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *scenarioPath == "" {
		printusage()
		return 2
	}

	if *verbose {
		acq.SetTraceLevel(4)
		acq.SetTraceOutput(os.Stderr)
	}

	runID := uuid.New().String()

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	engine := acq.NewEngine(nil)
	engine.Reset()
	channelCount := sc.Apply(engine)
	engine.SetRegValue(acq.AddrOffsetAeControl, channelCount)

	port, baud := *capturePort, *captureBaud
	if port == "" && sc.Capture.Port != "" {
		port, baud = sc.Capture.Port, sc.Capture.Baud
	}
	if port != "" {
		cap, err := OpenLiveCapture(port, baud)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer cap.Close()
		if _, err := cap.FillOnce(engine); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	} else if sc.Capture.SamplePath != "" {
		data, err := os.ReadFile(sc.Capture.SamplePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		samples := make([]int8, len(data))
		for i, b := range data {
			samples[i] = int8(b)
		}
		engine.WriteSample(samples)
	}

	engine.DoAcquisition()

	metrics := NewRunMetrics(runID)
	metrics.Collect(engine, channelCount)

	fmt.Printf("run %s: scenario %q, %d channel(s), estimated %dms\n",
		runID, sc.Name, channelCount, engine.ProcessTimeMillis())
	for i := uint32(0); i < channelCount; i++ {
		cfg := engine.ChannelConfig(i)
		fmt.Printf("  channel %d: success=%v noise_floor=%d top_peak={amp:%d exp:%d phase:%d freq:%d}\n",
			i, cfg.Success, cfg.NoiseFloor,
			cfg.Peaks[0].Amp, cfg.Peaks[0].Exp, cfg.Peaks[0].PhasePos, cfg.Peaks[0].FreqPos)
	}

	if *pushURL != "" {
		if err := metrics.Push(*pushURL, "aebench"); err != nil {
			fmt.Fprintln(os.Stderr, "push metrics:", err)
			return 1
		}
	}

	return 0
}
