// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package normalize turns raw Axios responses into the records exposed in
// package models.
//
// Every normalizer is a pure function of its input. The vendor encodes
// enumerations as single letters, booleans as per-field sentinels ("S",
// "1", "True", "true"), date and time in one string, and groups by
// adjacency in a sorted list; the helpers in this package undo each of
// those encodings in one place.
//
// Normalizers that read text out of embedded HTML return an error wrapping
// [ErrMalformedVendorData] when the markup is missing. There is no fallback:
// a missing match means the vendor changed its format.
package normalize
