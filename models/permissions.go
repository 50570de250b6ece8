// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawPermissions is response[0] of GET_AUTORIZZAZIONI_MASTER. The two
// "richieste" lists are only populated for students of age.
type RawPermissions struct {
	RequestsPending    []RawPermission `json:"richiesteDaAutorizzare"`
	RequestsRejected   []RawPermission `json:"richiesteNonAutorizzate"`
	PermissionsPending []RawPermission `json:"permessiDaAutorizzare"`
	PermissionsGranted []RawPermission `json:"permessiAutorizzati"`
}

// RawPermission is a permission or request. tipo is A (absence),
// U (early exit), E (late entry), G (school trip) or D (distance learning);
// classe, calcolo and giustificato are "True"/"False"; ora is 0 for a
// whole-day permission.
type RawPermission struct {
	ID           Scalar `json:"id"`
	StartDate    string `json:"dataInizio"`
	EndDate      string `json:"dataFine"`
	Type         string `json:"tipo"`
	Hour         Scalar `json:"ora"`
	Time         Scalar `json:"orario"`
	Reason       string `json:"motivo"`
	Notes        string `json:"note"`
	WholeClass   Scalar `json:"classe"`
	Counted      Scalar `json:"calcolo"`
	Justified    Scalar `json:"giustificato"`
	InsertedBy   string `json:"utenteInserimento"`
	AnsweredBy   string `json:"utenteAutorizzazione"`
	AnsweredDate string `json:"dataAutorizzazione"`
}

// Permissions is the normalized permission overview.
type Permissions struct {
	RequestsPending    []Permission `json:"richiesteDaAutorizzare"`
	RequestsRejected   []Permission `json:"richiesteNonAutorizzate"`
	PermissionsPending []Permission `json:"permessiDaAutorizzare"`
	PermissionsGranted []Permission `json:"permessiAutorizzati"`
}

// Permission is a normalized permission; Dates holds start and end.
type Permission struct {
	ID         Scalar         `json:"id"`
	Dates      [2]string      `json:"data"`
	Type       string         `json:"tipo"`
	Hour       Scalar         `json:"ora"`
	Time       string         `json:"orario"`
	Reason     string         `json:"motivo"`
	Notes      string         `json:"note"`
	WholeClass bool           `json:"diClasse"`
	Counted    bool           `json:"calcolata"`
	Justified  bool           `json:"giustificata"`
	Info       PermissionInfo `json:"info"`
}

// PermissionInfo tells who filed and who answered a permission.
type PermissionInfo struct {
	InsertedBy   string   `json:"inseritoDa"`
	AnsweredBy   string   `json:"rispostoDa"`
	AnsweredDate []string `json:"rispostoIl"`
}
