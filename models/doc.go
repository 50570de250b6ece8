// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the vendor wire types and the normalized records.
//
// Raw* types mirror the Axios JSON replies field for field, using [Scalar]
// wherever the vendor sends the same field as a string in one reply and a
// number in another. The remaining types are the normalized records with
// their published JSON keys.
package models
