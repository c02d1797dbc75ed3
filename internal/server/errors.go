// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrServerFailed is returned by RunServer when the listener stops with
	// an error other than a requested shutdown.
	ErrServerFailed = errors.New("http server failed")
)
