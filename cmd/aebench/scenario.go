/*------------------------------------------------------------------------------
* scenario.go : YAML scenario loader for the aebench harness
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : a scenario names a sample source plus one ChannelConfig per
*         channel under search; fields mirror acq.ChannelConfig directly so
*         a scenario file can be dropped straight onto SetChannelConfig
*         without an intermediate register-encode step.
*-----------------------------------------------------------------------------*/
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gnssacq/acq"
)

// ChannelScenario is the YAML shape of one channel's search parameters.
type ChannelScenario struct {
	Name              string `yaml:"name"`
	StrideNumber      uint32 `yaml:"stride_number"`
	CoherentNumber    uint32 `yaml:"coherent_number"`
	NonCoherentNumber uint32 `yaml:"noncoherent_number"`
	PeakRatioTh       uint32 `yaml:"peak_ratio_th"`
	EarlyTerminate    bool   `yaml:"early_terminate"`
	CenterFreq        int32  `yaml:"center_freq"`
	Svid              uint32 `yaml:"svid"`
	PrnSelect         uint32 `yaml:"prn_select"`
	CodeSpan          uint32 `yaml:"code_span"`
	ReadAddress       uint32 `yaml:"read_address"`
	DftFreq           uint32 `yaml:"dft_freq"`
	StrideInterval    int32  `yaml:"stride_interval"`
}

// Scenario is one aebench run: a name, an optional capture source
// (see livecapture.go), and the channel set to configure.
type Scenario struct {
	Name     string            `yaml:"name"`
	Capture  CaptureConfig     `yaml:"capture"`
	Channels []ChannelScenario `yaml:"channels"`
}

// CaptureConfig selects where raw samples come from. Port empty means
// synthetic/offline mode: the engine runs against whatever is already in
// its sample buffer (or a recorded file, via SamplePath).
type CaptureConfig struct {
	Port       string `yaml:"port"`
	Baud       int    `yaml:"baud"`
	SamplePath string `yaml:"sample_path"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Apply installs every channel of the scenario onto the engine and
// returns the channel count now active.
func (sc *Scenario) Apply(e *acq.Engine) uint32 {
	for i, ch := range sc.Channels {
		e.SetChannelConfig(uint32(i), acq.ChannelConfig{
			StrideNumber:      ch.StrideNumber,
			CoherentNumber:    ch.CoherentNumber,
			NonCoherentNumber: ch.NonCoherentNumber,
			PeakRatioTh:       ch.PeakRatioTh,
			EarlyTerminate:    ch.EarlyTerminate,
			CenterFreq:        ch.CenterFreq,
			Svid:              ch.Svid,
			PrnSelect:         ch.PrnSelect,
			CodeSpan:          ch.CodeSpan,
			ReadAddress:       ch.ReadAddress,
			DftFreq:           ch.DftFreq,
			StrideInterval:    ch.StrideInterval,
		})
	}
	return uint32(len(sc.Channels))
}
