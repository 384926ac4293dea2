/*
 * Metrics - OpenMetrics implementation.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics instance
var metrics *OpenMetrics

type OpenMetrics struct {
	registry *prometheus.Registry

	successfulApiCallsTotal *prometheus.CounterVec
	failedApiCallsTotal     *prometheus.CounterVec

	migratedRecords *prometheus.GaugeVec
	skippedRecords  *prometheus.GaugeVec
	apiDelayHist    *prometheus.HistogramVec
}

// GetOpenMetricsInstance returns the current OpenMetrics instance or creates a
// new one if required.
func GetOpenMetricsInstance() *OpenMetrics {
	if metrics == nil {
		reg := prometheus.NewRegistry()
		metrics = &OpenMetrics{
			registry: reg,
			successfulApiCallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "successful_api_calls_total",
					Help: "The number of successful AWS API calls",
				},
				[]string{"action"},
			),
			failedApiCallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "failed_api_calls_total",
					Help: "The number of AWS API calls that returned an error",
				},
				[]string{"action"},
			),
			migratedRecords: prometheus.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "migrated_records",
					Help: "The number of record sets in the change batch for a zone",
				},
				[]string{"zone"},
			),
			skippedRecords: prometheus.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "skipped_records",
					Help: "The number of NS and SOA record sets left out of the change batch",
				},
				[]string{"zone"},
			),
			apiDelayHist: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "api_delay_hist",
					Help:    "Histogram of the delay in milliseconds when calling the AWS API",
					Buckets: []float64{10, 100, 250, 500, 1000, 1500, 2000},
				},
				[]string{"action"},
			),
		}
		reg.MustRegister(metrics.successfulApiCallsTotal)
		reg.MustRegister(metrics.failedApiCallsTotal)
		reg.MustRegister(metrics.migratedRecords)
		reg.MustRegister(metrics.skippedRecords)
		reg.MustRegister(metrics.apiDelayHist)
	}
	return metrics
}

// getLabels builds the label map.
func getLabels(action string) prometheus.Labels {
	return prometheus.Labels{"action": action}
}

// getZoneLabels builds the label map for zone metrics.
func getZoneLabels(zone string) prometheus.Labels {
	return prometheus.Labels{"zone": zone}
}

// GetRegistry returns the prometheus registry.
func (m OpenMetrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// IncSuccessfulApiCallsTotal increments the successful_api_calls_total counter.
func (m *OpenMetrics) IncSuccessfulApiCallsTotal(action string) {
	m.successfulApiCallsTotal.With(getLabels(action)).Inc()
}

// IncFailedApiCallsTotal increments the failed_api_calls_total counter.
func (m *OpenMetrics) IncFailedApiCallsTotal(action string) {
	m.failedApiCallsTotal.With(getLabels(action)).Inc()
}

// SetMigratedRecords sets the value for the migrated_records gauge.
func (m *OpenMetrics) SetMigratedRecords(zone string, num int) {
	m.migratedRecords.With(getZoneLabels(zone)).Set(float64(num))
}

// SetSkippedRecords sets the value for the skipped_records gauge.
func (m *OpenMetrics) SetSkippedRecords(zone string, num int) {
	m.skippedRecords.With(getZoneLabels(zone)).Set(float64(num))
}

// AddApiDelayHist adds an API call delay to the api_delay_hist histogram.
func (m *OpenMetrics) AddApiDelayHist(action string, delay int64) {
	m.apiDelayHist.With(getLabels(action)).Observe(float64(delay))
}
