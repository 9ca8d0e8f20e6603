/*------------------------------------------------------------------------------
* metrics.go : prometheus export for an aebench run
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : one gauge vec per result field, labeled by channel index, plus an
*         optional push to a local pushgateway so a run can be scraped
*         after the process has already exited.
*-----------------------------------------------------------------------------*/
package main

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"gnssacq/acq"
)

// RunMetrics holds the gauge vecs populated after one DoAcquisition pass.
type RunMetrics struct {
	success    *prometheus.GaugeVec
	noiseFloor *prometheus.GaugeVec
	peakAmp    *prometheus.GaugeVec
	peakExp    *prometheus.GaugeVec
	processMs  prometheus.Gauge
}

// NewRunMetrics builds a fresh, unregistered set of gauges for one run.
func NewRunMetrics(runID string) *RunMetrics {
	labels := prometheus.Labels{"run": runID}
	return &RunMetrics{
		success: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "aebench",
			Name:        "channel_success",
			Help:        "1 if the channel's search found a qualifying peak",
			ConstLabels: labels,
		}, []string{"channel"}),
		noiseFloor: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "aebench",
			Name:        "channel_noise_floor",
			Help:        "per-channel noise floor estimate",
			ConstLabels: labels,
		}, []string{"channel"}),
		peakAmp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "aebench",
			Name:        "channel_peak_amplitude",
			Help:        "strongest peak amplitude, ranks 0-2",
			ConstLabels: labels,
		}, []string{"channel", "rank"}),
		peakExp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   "aebench",
			Name:        "channel_peak_exponent",
			Help:        "block-float exponent of the ranked peak",
			ConstLabels: labels,
		}, []string{"channel", "rank"}),
		processMs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "aebench",
			Name:        "process_time_ms",
			Help:        "estimated wall time of the acquisition pass",
			ConstLabels: labels,
		}),
	}
}

// Collect snapshots channel 0..n-1 of e into the gauges.
func (m *RunMetrics) Collect(e *acq.Engine, channelCount uint32) {
	for i := uint32(0); i < channelCount; i++ {
		cfg := e.ChannelConfig(i)
		label := prometheus.Labels{"channel": strconv.Itoa(int(i))}
		successVal := 0.0
		if cfg.Success {
			successVal = 1.0
		}
		m.success.With(label).Set(successVal)
		m.noiseFloor.With(label).Set(float64(cfg.NoiseFloor))
		for rank, peak := range cfg.Peaks {
			rl := prometheus.Labels{"channel": strconv.Itoa(int(i)), "rank": strconv.Itoa(rank)}
			m.peakAmp.With(rl).Set(float64(peak.Amp))
			m.peakExp.With(rl).Set(float64(peak.Exp))
		}
	}
	m.processMs.Set(float64(e.ProcessTimeMillis()))
}

// collectors returns every gauge in m as a prometheus.Collector, the shape
// OutMetrics/PushGaugeMetric expect.
func (m *RunMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.success, m.noiseFloor, m.peakAmp, m.peakExp, m.processMs}
}

// Push ships every gauge in m to a local pushgateway under the given job
// name, so a one-shot CLI run still leaves a scrapeable record behind.
func (m *RunMetrics) Push(gatewayURL, job string) error {
	pusher := push.New(gatewayURL, job)
	for _, c := range m.collectors() {
		pusher = pusher.Collector(c)
	}
	return pusher.Push()
}
