// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTML web interface of the application.
//
// It exposes route wiring, page handlers and the middleware chain. Request
// tracing, access logging, metrics, CSRF protection, login throttling and
// session resolution are handled in this package before requests are
// delegated to the service layer.
package http
