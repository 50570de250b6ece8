// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-axios-re services and the CLI.
//
// All Msg* constants are human-readable strings reported to the user, either
// as the status of a command or as the text of a business error. Keeping them
// in one place ensures consistent wording.
package app

const (
	// MsgLoginRequired is reported when a records call is made before a
	// successful login.
	MsgLoginRequired = "login required before calling this method"

	// MsgUnsupportedAction is reported when the requested action name is not
	// in the action table.
	MsgUnsupportedAction = "unsupported action"

	// MsgCommunicationAlreadyRead is the status of a mark-as-read command the
	// vendor answered with a null response.
	MsgCommunicationAlreadyRead = "Comunicazione già letta"

	// MsgCommunicationMarkedRead is the status of a mark-as-read command the
	// vendor acknowledged.
	MsgCommunicationMarkedRead = "communication marked as read"

	// MsgReplySent is the status of an accepted communication reply.
	MsgReplySent = "reply sent"
)
