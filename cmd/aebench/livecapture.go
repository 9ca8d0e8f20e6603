/*------------------------------------------------------------------------------
* livecapture.go : live sample capture over a serial front end
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : a raw 8-bit-sample UART/USB capture device, opened the same way
*         the teacher's stream layer opens an NMEA serial port; bytes read
*         off the wire are int8 IF samples fed straight into the engine's
*         ring buffer via WriteSample.
*-----------------------------------------------------------------------------*/
package main

import (
	"fmt"
	"io"

	serial "github.com/tarm/goserial"

	"gnssacq/acq"
)

// LiveCapture wraps an open serial port streaming raw acquisition samples.
type LiveCapture struct {
	port io.ReadWriteCloser
	name string
}

// OpenLiveCapture opens portName at baud and returns a ready LiveCapture.
func OpenLiveCapture(portName string, baud int) (*LiveCapture, error) {
	if baud == 0 {
		baud = 921600
	}
	cfg := &serial.Config{Name: portName, Baud: baud}
	port, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, fmt.Errorf("open capture port %s: %w", portName, err)
	}
	return &LiveCapture{port: port, name: portName}, nil
}

// Close releases the underlying port.
func (c *LiveCapture) Close() error {
	return c.port.Close()
}

// FillOnce reads up to one ring-buffer's worth of samples and writes them
// into e, returning the byte count actually read. It stops short of
// AeBufferSize if the port has less ready right now, leaving the buffer
// only partly filled.
func (c *LiveCapture) FillOnce(e *acq.Engine) (int, error) {
	buf := make([]byte, acq.AeBufferSize)
	n, err := c.port.Read(buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("read capture port %s: %w", c.name, err)
	}
	if n == 0 {
		return 0, nil
	}
	samples := make([]int8, n)
	for i, b := range buf[:n] {
		samples[i] = int8(b)
	}
	e.WriteSample(samples)
	return n, nil
}
