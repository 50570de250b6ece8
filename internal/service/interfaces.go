// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client business layer on top of
// [adapter.VendorAdapter]: it keeps the login session, dispatches record
// requests to the vendor and runs the replies through the normalizers.
package service

import (
	"context"

	"github.com/MKhiriev/go-axios-re/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService logs in to the vendor and holds the resulting session.
type AuthService interface {
	// Login authenticates the family account and stores the school code and
	// session GUID for subsequent calls. Returns the normalized login
	// result, or an error wrapping [ErrLoginFailed].
	Login(ctx context.Context, schoolCode, userCode, password string) (models.LoginResult, error)

	// IsLoggedIn reports whether a session is stored.
	IsLoggedIn() bool

	// StudentInfo returns the identification sent with every vendor
	// request, or [ErrNotLoggedIn].
	StudentInfo() (models.StudentInfo, error)

	// WebSession exchanges the stored session for a web portal session
	// cookie value.
	WebSession(ctx context.Context) (string, error)
}

// RecordsService reads and normalizes the school records of the logged-in
// student. Every method returns [ErrNotLoggedIn] before a successful login.
type RecordsService interface {
	// Get runs the action named by action (e.g. "voti", "Note",
	// " compiti ") and returns its normalized records. Case and whitespace
	// are ignored. Unknown names yield [ErrUnsupportedAction].
	Get(ctx context.Context, action string) (any, error)

	Homework(ctx context.Context) ([]models.Homework, error)
	Tests(ctx context.Context) ([]models.Test, error)
	Grades(ctx context.Context) ([]models.Grade, error)
	Communications(ctx context.Context) ([]models.Communication, error)
	Permissions(ctx context.Context) (models.Permissions, error)
	Timetable(ctx context.Context) ([]models.TimetableDay, error)
	Topics(ctx context.Context) ([][]models.Topic, error)
	Absences(ctx context.Context) ([]models.AbsencePeriod, error)
	Notes(ctx context.Context) ([]models.NotePeriod, error)
	Curriculum(ctx context.Context) ([]models.CurriculumEntry, error)
	ReportCards(ctx context.Context) ([]models.ReportCardPeriod, error)
	Student(ctx context.Context) (models.Student, error)

	// Timeline returns the events of a single day; date is dd/mm/yyyy.
	Timeline(ctx context.Context, date string) (models.Timeline, error)
}

// CommandService runs the vendor commands that change state.
type CommandService interface {
	// MarkCommunicationRead flags a communication as read. data is sent
	// verbatim as the command payload, normally {id, idAlunno}. A null
	// vendor response means the communication was already read.
	MarkCommunicationRead(ctx context.Context, data any) (models.CommandResult, error)

	// ReplyCommunication answers a communication that expects a reply.
	// Returns an error wrapping [ErrReplyRejected] if the vendor refuses.
	ReplyCommunication(ctx context.Context, data any) (models.CommandResult, error)
}
