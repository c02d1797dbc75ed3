// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics for the HTTP surface and the
// domain services and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=metrics.go -destination=../mock/metrics_mock.go -package=mock

// Resource and action label values of the ownership skip counter.
const (
	ResourceTask = "task"
	ResourceNote = "note"

	ActionToggle = "toggle"
	ActionDelete = "delete"
)

// Login attempt results.
const (
	LoginSucceeded = "success"
	LoginFailed    = "failure"
	LoginThrottled = "throttled"
)

// MetricsCollector is the recording side used by middlewares and services.
type MetricsCollector interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordOwnershipSkip(resource, action string)
	RecordLoginAttempt(result string)
}

// Collector implements [MetricsCollector] on top of Prometheus collectors.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	ownershipSkips *prometheus.CounterVec
	loginAttempts  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "task_keeper_http_requests_total",
			Help: "Number of handled HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "task_keeper_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ownershipSkips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "task_keeper_ownership_skips_total",
			Help: "Mutations ignored because the record belongs to another user.",
		}, []string{"resource", "action"}),
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "task_keeper_login_attempts_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.ownershipSkips,
		c.loginAttempts,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordOwnershipSkip(resource, action string) {
	c.ownershipSkips.WithLabelValues(resource, action).Inc()
}

func (c *Collector) RecordLoginAttempt(result string) {
	c.loginAttempts.WithLabelValues(result).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nopCollector struct{}

// NewNopCollector returns a collector that drops everything. Used by the
// admin CLI commands, which expose no metrics.
func NewNopCollector() MetricsCollector {
	return nopCollector{}
}

func (nopCollector) RecordHTTPRequest(string, string, int, time.Duration) {}
func (nopCollector) RecordOwnershipSkip(string, string)                   {}
func (nopCollector) RecordLoginAttempt(string)                            {}
