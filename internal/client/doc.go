// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It logs in with the configured account, runs a single query (a record
// action, a timeline day, the login result itself or a web session
// exchange) and writes the normalized result as indented JSON.
package client
