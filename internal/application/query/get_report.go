// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"

	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET REPORT QUERY
// Проецирует зачётную книжку в отчёт для отображения: курсы каждого
// семестра с 1-базными индексами, GPA семестра и общий CGPA.
// Чистая проекция без побочных эффектов; округление значений
// выполняется только презентером.
// ══════════════════════════════════════════════════════════════════════════════

// CourseRow - одна строка курса в отчёте.
type CourseRow struct {
	// Index - позиция курса в семестре (с 1).
	Index int `json:"index"`

	// Grade - числовая оценка.
	Grade float64 `json:"grade"`

	// Credit - кредитные часы.
	Credit float64 `json:"credit"`
}

// SemesterRow - один семестр в отчёте.
type SemesterRow struct {
	// Index - позиция семестра (с 1).
	Index int `json:"index"`

	// Courses - курсы семестра в порядке добавления.
	Courses []CourseRow `json:"courses"`

	// GPA - средний балл семестра (неокруглённый).
	GPA float64 `json:"gpa"`
}

// Report - полная проекция зачётной книжки.
type Report struct {
	// TranscriptID - идентификатор агрегата, по которому строился отчёт.
	TranscriptID string `json:"transcript_id"`

	// Semesters - семестры в порядке добавления.
	Semesters []SemesterRow `json:"semesters"`

	// CGPA - общий средний балл по всем курсам (неокруглённый).
	CGPA float64 `json:"cgpa"`
}

// ReportCache кэширует построенные отчёты. Реализация находится в
// infrastructure/persistence/cache.
type ReportCache interface {
	// Get возвращает закэшированный отчёт, если он ещё валиден.
	Get(transcriptID string) (*Report, bool)

	// Set сохраняет отчёт.
	Set(transcriptID string, report *Report)

	// Invalidate сбрасывает отчёт после мутации агрегата.
	Invalidate(transcriptID string)
}

// GetReportHandler обрабатывает запрос отчёта.
type GetReportHandler struct {
	transcript *transcript.Transcript
	cache      ReportCache
}

// NewGetReportHandler создаёт обработчик запроса отчёта.
// Кэш опционален: nil отключает кэширование.
func NewGetReportHandler(t *transcript.Transcript, cache ReportCache) *GetReportHandler {
	return &GetReportHandler{transcript: t, cache: cache}
}

// Handle строит отчёт по текущему состоянию зачётной книжки.
func (h *GetReportHandler) Handle(_ context.Context) *Report {
	if h.cache != nil {
		if cached, ok := h.cache.Get(h.transcript.ID()); ok {
			return cached
		}
	}

	report := &Report{
		TranscriptID: h.transcript.ID(),
		Semesters:    make([]SemesterRow, 0, h.transcript.SemesterCount()),
		CGPA:         h.transcript.CGPA(),
	}

	for i, sem := range h.transcript.Semesters() {
		row := SemesterRow{
			Index:   i + 1,
			Courses: make([]CourseRow, 0, sem.CourseCount()),
			GPA:     sem.GPA(),
		}
		for j, c := range sem.Courses() {
			row.Courses = append(row.Courses, CourseRow{
				Index:  j + 1,
				Grade:  c.Grade,
				Credit: c.Credit,
			})
		}
		report.Semesters = append(report.Semesters, row)
	}

	if h.cache != nil {
		h.cache.Set(h.transcript.ID(), report)
	}
	return report
}
