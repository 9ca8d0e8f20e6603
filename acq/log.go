/*------------------------------------------------------------------------------
* log.go : debug trace logging for the acquisition engine
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : same shape as gnssgo's common.go Trace()/Tracet() pair: a
*         package-level level-gated writer. The engine's own search path
*         does not call Trace or Tracet, so a DoAcquisition run writes no
*         trace lines at any level; per-sample/per-cycle intermediate-result
*         dumps stay out of scope (spec Non-goal).
*-----------------------------------------------------------------------------*/
package acq

import (
	"fmt"
	"io"
	"os"
	"time"
)

var (
	traceOut   io.Writer = io.Discard
	traceLevel int       = 0
	traceStart time.Time
)

// SetTraceOutput directs trace output to w; pass nil to discard (the default).
func SetTraceOutput(w io.Writer) {
	if w == nil {
		traceOut = io.Discard
		return
	}
	traceOut = w
	traceStart = time.Now()
}

// SetTraceLevel sets the minimum level a Trace/Tracet call must meet to be
// written; 0 (the default) disables tracing entirely.
func SetTraceLevel(level int) {
	traceLevel = level
}

// Trace writes a formatted line if level <= the configured trace level.
func Trace(level int, format string, v ...interface{}) {
	if traceLevel == 0 || level > traceLevel {
		return
	}
	fmt.Fprintf(traceOut, "%d "+format, append([]interface{}{level}, v...)...)
}

// Tracet is like Trace but prefixes the elapsed time since SetTraceOutput.
func Tracet(level int, format string, v ...interface{}) {
	if traceLevel == 0 || level > traceLevel {
		return
	}
	elapsed := time.Since(traceStart).Seconds()
	fmt.Fprintf(traceOut, "%d %9.3f: "+format, append([]interface{}{level, elapsed}, v...)...)
}

// TraceOpen is a convenience wrapper matching the teacher's TraceOpen(file)
// shape for callers that want file-backed tracing instead of an io.Writer.
func TraceOpen(file string) error {
	if file == "" {
		SetTraceOutput(os.Stdout)
		return nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	SetTraceOutput(f)
	return nil
}
