// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawCommunications is response[0] of GET_COMUNICAZIONI_MASTER.
type RawCommunications struct {
	StudentID      Scalar             `json:"idAlunno"`
	Communications []RawCommunication `json:"comunicazioni"`
}

// RawCommunication is one notice. tipo is 1 (circular), 4 (school/family)
// or 5 (communication); letta is "S"/"N"; tipo_risposta is "0" when no
// reply is expected; opzioni lists reply options separated by '|'.
type RawCommunication struct {
	Date        string          `json:"data"`
	Title       string          `json:"titolo"`
	Body        string          `json:"desc"`
	ID          Scalar          `json:"id"`
	Type        Scalar          `json:"tipo"`
	Read        Scalar          `json:"letta"`
	Attachments []RawAttachment `json:"allegati"`
	ReplyType   Scalar          `json:"tipo_risposta"`
	Options     string          `json:"opzioni"`
}

// RawAttachment is a file attached to a communication.
type RawAttachment struct {
	SourceName  string `json:"sourceName"`
	Description string `json:"desc"`
	URL         string `json:"URL"`
}

// Communication is a normalized notice. StudentID is needed to mark it as
// read or to reply.
type Communication struct {
	Date          string       `json:"data"`
	Title         string       `json:"titolo"`
	Text          string       `json:"testo"`
	ID            Scalar       `json:"id"`
	StudentID     Scalar       `json:"idAlunno"`
	Type          string       `json:"tipo"`
	Read          bool         `json:"letta"`
	Attachments   []Attachment `json:"allegati"`
	ReplyExpected bool         `json:"prevedeRisposta"`
	ReplyOptions  []string     `json:"opzioniRisposta"`
}

// Attachment is a normalized communication attachment.
type Attachment struct {
	Name         string `json:"nome"`
	Description  string `json:"desc"`
	DownloadLink string `json:"downloadLink"`
}
