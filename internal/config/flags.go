// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Unknown flags produce an error instead of exiting the process.
//
// Flags:
//
//	-a server address in format [host]:port
//	-d database DSN
//	-c/-config JSON or YAML config file path
//	-session-sign-key session token signing key
//	-session-issuer session token issuer
//	-session-duration session lifetime (e.g. "24h")
//	-cookie-secure mark cookies Secure
//	-request-timeout request timeout (e.g. "15s")
//	-redis-address redis host:port for session revocation
//	-redis-password redis password
//	-redis-db redis database index
//	-login-rate login attempts per minute per IP
//	-login-burst login limiter burst
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var serverAddress NetAddress

	fs := flag.NewFlagSet("task-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.SessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.App.SessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Session lifetime (e.g., 24h)")
	fs.BoolVar(&cfg.App.CookieSecure, "cookie-secure", false, "Mark cookies Secure")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.IntVar(&cfg.Server.LoginRatePerMinute, "login-rate", 0, "Login attempts per minute per IP")
	fs.IntVar(&cfg.Server.LoginBurst, "login-burst", 0, "Login limiter burst")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis host:port")
	fs.StringVar(&cfg.Storage.Redis.Password, "redis-password", "", "Redis password")
	fs.IntVar(&cfg.Storage.Redis.DB, "redis-db", 0, "Redis database index")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
}

// String returns a canonical [host]:port string for a NetAddress.
// A zero NetAddress yields "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port. An empty host listens on
// all interfaces; a non-empty host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
