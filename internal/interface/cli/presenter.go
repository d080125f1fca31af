package cli

import (
	"fmt"
	"strings"

	"github.com/alem-hub/cgpa-tracker/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT PRESENTER
// Форматирует отчёт для консоли: семестры в порядке добавления, курсы с
// 1-базными индексами, GPA каждого семестра и общий CGPA. Все значения
// выводятся с фиксированными двумя знаками; это единственное место,
// где происходит округление.
// ══════════════════════════════════════════════════════════════════════════════

// ReportPresenter renders a query.Report for the console.
type ReportPresenter struct{}

// NewReportPresenter создаёт новый презентер отчёта.
func NewReportPresenter() *ReportPresenter {
	return &ReportPresenter{}
}

// FormatReport возвращает готовый к печати текст отчёта.
func (p *ReportPresenter) FormatReport(report *query.Report) string {
	var sb strings.Builder

	for _, sem := range report.Semesters {
		fmt.Fprintf(&sb, "\nSemester %d:\n", sem.Index)
		for _, c := range sem.Courses {
			fmt.Fprintf(&sb, "Course %d | Grade: %.2f | Credit: %.2f\n",
				c.Index, c.Grade, c.Credit)
		}
		fmt.Fprintf(&sb, "GPA: %.2f\n", sem.GPA)
	}

	fmt.Fprintf(&sb, "\nFinal CGPA: %.2f\n", report.CGPA)
	return sb.String()
}

// FormatMenu возвращает текст главного меню с финальной подсказкой выбора.
func (p *ReportPresenter) FormatMenu() string {
	var sb strings.Builder
	sb.WriteString("\n--- CGPA CALCULATOR MENU ---\n")
	sb.WriteString("1. Add Semester\n")
	sb.WriteString("2. Display Result\n")
	sb.WriteString("3. Save to File\n")
	sb.WriteString("4. Load from File\n")
	sb.WriteString("5. Exit\n")
	sb.WriteString("Enter choice: ")
	return sb.String()
}
