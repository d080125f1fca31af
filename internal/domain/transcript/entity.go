// Package transcript содержит доменную модель зачётной книжки студента.
// Это ядро бизнес-логики - здесь нет внешних зависимостей кроме uuid.
package transcript

import (
	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Grade представляет числовую оценку за курс по десятибалльной шкале.
type Grade float64

// IsValid проверяет, что оценка в диапазоне [0, 10].
func (g Grade) IsValid() bool {
	return g >= 0 && g <= 10
}

// Credit представляет количество кредитных часов курса.
type Credit float64

// IsValid проверяет, что кредиты положительные.
func (c Credit) IsValid() bool {
	return c > 0
}

// ══════════════════════════════════════════════════════════════════════════════
// COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course - одно наблюдение (оценка, кредиты). Курс неизменяем после создания
// и не имеет идентичности кроме позиции в семестре.
//
// Валидация выполняется только на входе (CLI); прямое конструирование
// с некорректными значениями допускается, агрегатные функции не проверяют
// значения повторно.
type Course struct {
	Grade  float64
	Credit float64
}

// NewCourse создаёт курс с указанной оценкой и кредитами.
func NewCourse(grade, credit float64) Course {
	return Course{Grade: grade, Credit: credit}
}

// weightedAverage вычисляет Σ(grade×credit)/Σcredit по списку курсов.
// Возвращает ровно 0.0, когда сумма кредитов равна нулю - вызывающий
// не может отличить "нет данных" от легитимного нулевого среднего.
// Накопление без округления; округление до двух знаков - только при выводе.
func weightedAverage(courses []Course) float64 {
	var totalCredits, totalPoints float64
	for _, c := range courses {
		totalCredits += c.Credit
		totalPoints += c.Grade * c.Credit
	}
	if totalCredits == 0 {
		return 0.0
	}
	return totalPoints / totalCredits
}

// ══════════════════════════════════════════════════════════════════════════════
// SEMESTER
// ══════════════════════════════════════════════════════════════════════════════

// Semester владеет упорядоченным списком курсов одного семестра.
// Список append-only: курсы не удаляются и не изменяются после добавления.
type Semester struct {
	courses []Course
}

// NewSemester создаёт пустой семестр.
func NewSemester() *Semester {
	return &Semester{}
}

// AddCourse добавляет курс в конец списка.
func (s *Semester) AddCourse(grade, credit float64) {
	s.courses = append(s.courses, NewCourse(grade, credit))
}

// Courses возвращает список курсов в порядке добавления.
func (s *Semester) Courses() []Course {
	return s.courses
}

// CourseCount возвращает количество курсов в семестре.
func (s *Semester) CourseCount() int {
	return len(s.courses)
}

// GPA вычисляет средний балл семестра: Σ(grade×credit)/Σcredit,
// 0.0 при нулевой сумме кредитов.
func (s *Semester) GPA() float64 {
	return weightedAverage(s.courses)
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN AGGREGATE: TRANSCRIPT
// ══════════════════════════════════════════════════════════════════════════════

// Transcript - корневой агрегат: все семестры одного студента.
// Владение строго древовидное: Transcript владеет семестрами,
// семестры владеют курсами.
type Transcript struct {
	// ID - внутренний идентификатор агрегата (UUID в строковом формате).
	// Не персистируется: формат файла не содержит заголовка, поэтому
	// идентификатор генерируется заново при каждом старте процесса.
	id string

	semesters []*Semester
}

// New создаёт пустую зачётную книжку с новым ID.
func New() *Transcript {
	return &Transcript{id: uuid.NewString()}
}

// ID возвращает идентификатор агрегата.
func (t *Transcript) ID() string {
	return t.id
}

// AddSemester добавляет семестр в конец списка.
func (t *Transcript) AddSemester(sem *Semester) {
	t.semesters = append(t.semesters, sem)
}

// Semesters возвращает семестры в порядке добавления.
func (t *Transcript) Semesters() []*Semester {
	return t.semesters
}

// SemesterCount возвращает количество семестров.
func (t *Transcript) SemesterCount() int {
	return len(t.semesters)
}

// Replace безусловно заменяет все семестры загруженными из хранилища.
func (t *Transcript) Replace(semesters []*Semester) {
	t.semesters = semesters
}

// Clear удаляет все семестры. Используется при сбросе состояния
// после ошибки загрузки, чтобы не оставлять частично загруженных данных.
func (t *Transcript) Clear() {
	t.semesters = nil
}

// CGPA вычисляет общий средний балл по всем курсам всех семестров
// (единый взвешенный средний по плоскому списку, не среднее средних).
func (t *Transcript) CGPA() float64 {
	var all []Course
	for _, sem := range t.semesters {
		all = append(all, sem.courses...)
	}
	return weightedAverage(all)
}
