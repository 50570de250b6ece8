// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/normalize"
	"github.com/MKhiriev/go-axios-re/models"
)

// Vendor services behind the record actions.
const (
	serviceHomework       = "GET_COMPITI_MASTER"
	serviceGrades         = "GET_VOTI_LIST_DETAIL"
	serviceCommunications = "GET_COMUNICAZIONI_MASTER"
	servicePermissions    = "GET_AUTORIZZAZIONI_MASTER"
	serviceTimetable      = "GET_ORARIO_MASTER"
	serviceTopics         = "GET_ARGOMENTI_MASTER"
	serviceAbsences       = "GET_ASSENZE_MASTER"
	serviceNotes          = "GET_NOTE_MASTER"
	serviceCurriculum     = "GET_CURRICULUM_MASTER"
	serviceReportCards    = "GET_PAGELLA_MASTER"
	serviceStudent        = "GET_STUDENTI"
	serviceTimeline       = "GET_TIMELINE"
)

type actionFunc func(r *recordsService, ctx context.Context) (any, error)

// actions maps normalized action names to their record accessor.
var actions = map[string]actionFunc{
	"compiti":       asAction((*recordsService).Homework),
	"verifiche":     asAction((*recordsService).Tests),
	"voti":          asAction((*recordsService).Grades),
	"comunicazioni": asAction((*recordsService).Communications),
	"permessi":      asAction((*recordsService).Permissions),
	"orario":        asAction((*recordsService).Timetable),
	"argomenti":     asAction((*recordsService).Topics),
	"assenze":       asAction((*recordsService).Absences),
	"note":          asAction((*recordsService).Notes),
	"curriculum":    asAction((*recordsService).Curriculum),
	"pagella":       asAction((*recordsService).ReportCards),
	"studente":      asAction((*recordsService).Student),
}

func asAction[T any](fetch func(*recordsService, context.Context) (T, error)) actionFunc {
	return func(r *recordsService, ctx context.Context) (any, error) {
		records, err := fetch(r, ctx)
		if err != nil {
			return nil, err
		}
		return records, nil
	}
}

// SupportedActions returns the action names accepted by [RecordsService.Get],
// sorted.
func SupportedActions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NormalizeAction lowercases action and strips all whitespace.
func NormalizeAction(action string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, action)
}

type recordsService struct {
	adapter adapter.VendorAdapter
	session *Session
	logger  *logger.Logger
}

// NewRecordsService creates a [RecordsService] reading with the credentials
// stored in session.
func NewRecordsService(vendorAdapter adapter.VendorAdapter, session *Session, logger *logger.Logger) RecordsService {
	return &recordsService{adapter: vendorAdapter, session: session, logger: logger}
}

func (r *recordsService) Get(ctx context.Context, action string) (any, error) {
	if !r.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	fetch, ok := actions[NormalizeAction(action)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAction, action)
	}

	return fetch(r, ctx)
}

type homeworkMaster struct {
	Homework []models.RawHomework `json:"compiti"`
}

type timetableMaster struct {
	Days []models.RawTimetableDay `json:"orario"`
}

type topicsMaster struct {
	Topics []models.RawTopic `json:"argomenti"`
}

type curriculumMaster struct {
	Entries []models.RawCurriculumEntry `json:"curriculum"`
}

func (r *recordsService) Homework(ctx context.Context) ([]models.Homework, error) {
	master, err := retrieveFirst[homeworkMaster](ctx, r, serviceHomework, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Homework(master.Homework), nil
}

func (r *recordsService) Tests(ctx context.Context) ([]models.Test, error) {
	master, err := retrieveFirst[homeworkMaster](ctx, r, serviceHomework, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Tests(master.Homework)
}

func (r *recordsService) Grades(ctx context.Context) ([]models.Grade, error) {
	periods, err := retrieve[[]models.RawGradePeriod](ctx, r, serviceGrades, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Grades(periods), nil
}

func (r *recordsService) Communications(ctx context.Context) ([]models.Communication, error) {
	master, err := retrieveFirst[models.RawCommunications](ctx, r, serviceCommunications, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Communications(master.Communications, master.StudentID), nil
}

func (r *recordsService) Permissions(ctx context.Context) (models.Permissions, error) {
	master, err := retrieveFirst[models.RawPermissions](ctx, r, servicePermissions, nil)
	if err != nil {
		return models.Permissions{}, err
	}
	return normalize.Permissions(master), nil
}

func (r *recordsService) Timetable(ctx context.Context) ([]models.TimetableDay, error) {
	master, err := retrieveFirst[timetableMaster](ctx, r, serviceTimetable, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Timetable(master.Days), nil
}

func (r *recordsService) Topics(ctx context.Context) ([][]models.Topic, error) {
	master, err := retrieveFirst[topicsMaster](ctx, r, serviceTopics, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Topics(master.Topics), nil
}

func (r *recordsService) Absences(ctx context.Context) ([]models.AbsencePeriod, error) {
	periods, err := retrieve[[]models.RawAbsencePeriod](ctx, r, serviceAbsences, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Absences(periods), nil
}

func (r *recordsService) Notes(ctx context.Context) ([]models.NotePeriod, error) {
	periods, err := retrieve[[]models.RawNotePeriod](ctx, r, serviceNotes, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Notes(periods)
}

func (r *recordsService) Curriculum(ctx context.Context) ([]models.CurriculumEntry, error) {
	master, err := retrieveFirst[curriculumMaster](ctx, r, serviceCurriculum, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Curriculum(master.Entries), nil
}

func (r *recordsService) ReportCards(ctx context.Context) ([]models.ReportCardPeriod, error) {
	periods, err := retrieve[[]models.RawReportCardPeriod](ctx, r, serviceReportCards, nil)
	if err != nil {
		return nil, err
	}
	return normalize.ReportCards(periods), nil
}

func (r *recordsService) Student(ctx context.Context) (models.Student, error) {
	student, err := retrieveFirst[models.RawStudent](ctx, r, serviceStudent, nil)
	if err != nil {
		return models.Student{}, err
	}
	return normalize.Student(student), nil
}

type timelineRequest struct {
	Date string `json:"dataGiorno"`
}

func (r *recordsService) Timeline(ctx context.Context, date string) (models.Timeline, error) {
	day, err := retrieveFirst[models.RawTimeline](ctx, r, serviceTimeline, timelineRequest{Date: date})
	if err != nil {
		return models.Timeline{}, err
	}
	return normalize.Timeline(day)
}

// retrieve runs service and decodes the whole response value into T.
func retrieve[T any](ctx context.Context, r *recordsService, service string, data any) (T, error) {
	var records T

	info, err := r.session.StudentInfo()
	if err != nil {
		return records, err
	}

	raw, err := r.adapter.Retrieve(ctx, info, models.Command{
		Application: models.ApplicationFamily,
		Service:     service,
		Data:        data,
	})
	if err != nil {
		return records, fmt.Errorf("%s: %w", service, mapAdapterError(err))
	}

	if err = json.Unmarshal(raw, &records); err != nil {
		r.logger.Err(err).Str("service", service).Msg("unexpected response shape")
		return records, fmt.Errorf("%s: %w: %v", service, ErrUnexpectedResponse, err)
	}

	return records, nil
}

// retrieveFirst runs service and returns the first element of the response
// list.
func retrieveFirst[T any](ctx context.Context, r *recordsService, service string, data any) (T, error) {
	var first T

	list, err := retrieve[[]T](ctx, r, service, data)
	if err != nil {
		return first, err
	}
	if len(list) == 0 {
		return first, fmt.Errorf("%s: %w", service, ErrEmptyResponse)
	}

	return list[0], nil
}
