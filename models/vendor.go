// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Application identifiers understood by the vendor.
const (
	// ApplicationFamily is the "registro famiglie" application every
	// record request is addressed to.
	ApplicationFamily = "FAM"

	// ApplicationStudentApp is the app name sent with login credentials.
	ApplicationStudentApp = "ALU_APP"
)

// VendorErrorCode is the errorcode value signalling a failed request.
const VendorErrorCode = "-1"

// StudentInfo identifies the logged-in family account on every request.
type StudentInfo struct {
	// CodiceFiscale is the school's tax code, entered at login.
	CodiceFiscale string

	// SessionGUID is the session identifier returned by Login2.
	SessionGUID string

	// VendorToken is the deployment-wide vendor token from configuration.
	VendorToken string
}

// Command is the sCommandJSON part of a vendor request.
type Command struct {
	// Application is the target application, normally [ApplicationFamily].
	Application string `json:"sApplication"`

	// Service is the vendor action, e.g. "GET_VOTI_LIST_DETAIL" or
	// "APP_PROCESS_QUEUE".
	Service string `json:"sService"`

	// Module selects the sub-command of APP_PROCESS_QUEUE requests.
	Module string `json:"sModule,omitempty"`

	// Data carries action-specific parameters. The vendor expects an
	// object even when there are none.
	Data any `json:"data"`
}

// VendorRequest is the JSON document wrapped in an envelope for
// RetrieveDataInformation and ExecuteCommand.
type VendorRequest struct {
	CodiceFiscale string  `json:"sCodiceFiscale"`
	SessionGUID   string  `json:"sSessionGuid"`
	Command       Command `json:"sCommandJSON"`
	VendorToken   string  `json:"sVendorToken"`
}

// NewVendorRequest builds a request for info with the given command.
func NewVendorRequest(info StudentInfo, cmd Command) VendorRequest {
	if cmd.Data == nil {
		cmd.Data = struct{}{}
	}

	return VendorRequest{
		CodiceFiscale: info.CodiceFiscale,
		SessionGUID:   info.SessionGUID,
		Command:       cmd,
		VendorToken:   info.VendorToken,
	}
}

// Credentials is the Login2 request document.
type Credentials struct {
	CodiceFiscale string `json:"sCodiceFiscale"`
	UserName      string `json:"sUserName"`
	Password      string `json:"sPassword"`
	AppName       string `json:"sAppName"`
	VendorToken   string `json:"sVendorToken"`
}

// VendorResponse is the decoded body of every vendor reply.
type VendorResponse struct {
	// ErrorCode is "-1" when the request failed.
	ErrorCode Scalar `json:"errorcode"`

	// ErrorMessage is the vendor's human-readable failure reason.
	ErrorMessage string `json:"errormessage"`

	// Response is the action-specific payload; "null" for commands that
	// have nothing to report.
	Response json.RawMessage `json:"response"`
}

// Failed reports whether the vendor flagged the request as failed.
func (r VendorResponse) Failed() bool {
	return r.ErrorCode == VendorErrorCode
}

// ExecuteRequest is the JSON body posted to ExecuteCommand.
type ExecuteRequest struct {
	// JSONRequest is the envelope-encoded [VendorRequest].
	JSONRequest string `json:"JsonRequest"`
}

// WebLoginParams is returned by GET_URL_WEB and by the SSO endpoint: a form
// that, posted to URL, answers with a session cookie.
type WebLoginParams struct {
	URL        string `json:"url"`
	Parameters string `json:"parameters"`
	Action     string `json:"action"`
}

// CommandResult is the outcome of an ExecuteCommand call that does not
// return records (mark as read, reply).
type CommandResult struct {
	// Status is a short description of the result.
	Status string `json:"status"`

	// Response is the raw vendor response, if any.
	Response json.RawMessage `json:"response,omitempty"`
}
