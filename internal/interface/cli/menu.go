package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alem-hub/cgpa-tracker/internal/application/command"
	"github.com/alem-hub/cgpa-tracker/internal/application/query"
	"github.com/alem-hub/cgpa-tracker/internal/domain/shared"
	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
	"github.com/alem-hub/cgpa-tracker/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// INTERACTIVE MENU
// Конечный автомат: MenuWait -> {AddSemester, ShowResults, SaveFile,
// LoadFile, Exit}; каждое состояние кроме Exit возвращается в MenuWait.
// Выбор валидируется через Reader до множества {1..5}.
// ══════════════════════════════════════════════════════════════════════════════

// Menu choices.
const (
	choiceAddSemester = 1
	choiceShowResults = 2
	choiceSaveFile    = 3
	choiceLoadFile    = 4
	choiceExit        = 5
)

// InputBounds задаёт диапазоны значений интерактивного ввода.
type InputBounds struct {
	MaxCourses int
	GradeMin   float64
	GradeMax   float64
	CreditMin  float64
	CreditMax  float64
}

// Menu управляет интерактивным циклом.
type Menu struct {
	reader    *Reader
	out       io.Writer
	errOut    io.Writer
	presenter *ReportPresenter
	bounds    InputBounds
	log       *logger.Logger

	addSemester *command.AddSemesterHandler
	save        *command.SaveTranscriptHandler
	load        *command.LoadTranscriptHandler
	report      *query.GetReportHandler
}

// MenuConfig собирает зависимости меню.
type MenuConfig struct {
	Reader    *Reader
	Out       io.Writer
	ErrOut    io.Writer
	Bounds    InputBounds
	Logger    *logger.Logger
	Add       *command.AddSemesterHandler
	Save      *command.SaveTranscriptHandler
	Load      *command.LoadTranscriptHandler
	GetReport *query.GetReportHandler
}

// NewMenu создаёт меню.
func NewMenu(cfg MenuConfig) *Menu {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Menu{
		reader:      cfg.Reader,
		out:         cfg.Out,
		errOut:      cfg.ErrOut,
		presenter:   NewReportPresenter(),
		bounds:      cfg.Bounds,
		log:         log.With(logger.Component("menu")),
		addSemester: cfg.Add,
		save:        cfg.Save,
		load:        cfg.Load,
		report:      cfg.GetReport,
	}
}

// Run крутит цикл меню до выбора Exit. Исчерпание входного потока
// (EOF на stdin) трактуется как выход; никакая плохая команда или
// плохой файл данных не завершает процесс.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, m.presenter.FormatMenu())

		choice, err := m.reader.ReadInt("", choiceAddSemester, choiceExit)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.log.Debug("input exhausted, exiting")
				return nil
			}
			return err
		}

		switch choice {
		case choiceAddSemester:
			if err := m.runAddSemester(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					m.log.Debug("input exhausted, exiting")
					return nil
				}
				return err
			}
		case choiceShowResults:
			m.runShowResults(ctx)
		case choiceSaveFile:
			m.runSave(ctx)
		case choiceLoadFile:
			m.runLoad(ctx)
		case choiceExit:
			fmt.Fprintln(m.out, "Exiting program.")
			return nil
		}
	}
}

// runAddSemester собирает курсы нового семестра и добавляет его.
// Ошибка возвращается только при исчерпании входного потока.
func (m *Menu) runAddSemester(ctx context.Context) error {
	n, err := m.reader.ReadInt("Enter number of courses: ", 1, m.bounds.MaxCourses)
	if err != nil {
		return err
	}

	courses := make([]transcript.Course, 0, n)
	for i := 0; i < n; i++ {
		grade, err := m.reader.ReadFloat("Enter numeric grade (0-10): ",
			m.bounds.GradeMin, m.bounds.GradeMax)
		if err != nil {
			return err
		}
		credit, err := m.reader.ReadFloat("Enter credit hours (>0): ",
			m.bounds.CreditMin, m.bounds.CreditMax)
		if err != nil {
			return err
		}
		courses = append(courses, transcript.NewCourse(grade, credit))
	}

	if _, err := m.addSemester.Handle(ctx, command.AddSemesterCommand{Courses: courses}); err != nil {
		fmt.Fprintf(m.errOut, "Error adding semester: %v\n", err)
	}
	return nil
}

// runShowResults печатает отчёт.
func (m *Menu) runShowResults(ctx context.Context) {
	fmt.Fprint(m.out, m.presenter.FormatReport(m.report.Handle(ctx)))
}

// runSave сохраняет состояние в файл.
func (m *Menu) runSave(ctx context.Context) {
	if err := m.save.Handle(ctx); err != nil {
		fmt.Fprintf(m.errOut, "Error saving data: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Data saved successfully.")
}

// runLoad загружает состояние из файла.
func (m *Menu) runLoad(ctx context.Context) {
	if _, err := m.load.Handle(ctx); err != nil {
		if shared.IsNoData(err) {
			fmt.Fprintln(m.out, "No saved data found.")
			return
		}
		fmt.Fprintf(m.errOut, "Error loading data: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Data loaded successfully.")
}
