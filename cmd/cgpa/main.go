// Package main - точка входа интерактивного калькулятора CGPA.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая модель зачётной книжки (семестры, курсы, взвешенные средние)
// - Application: команды и запросы (добавить семестр, сохранить, загрузить, отчёт)
// - Infrastructure: файловое хранилище и кэш отчётов
// - Interface: консольное меню
//
// Программа однопоточная и синхронная: одно меню, один файл данных,
// никакой сети. Код выхода 0 при штатном завершении через пункт Exit.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alem-hub/cgpa-tracker/config"
	"github.com/alem-hub/cgpa-tracker/internal/application/command"
	"github.com/alem-hub/cgpa-tracker/internal/application/query"
	"github.com/alem-hub/cgpa-tracker/internal/domain/transcript"
	"github.com/alem-hub/cgpa-tracker/internal/infrastructure/persistence/cache"
	"github.com/alem-hub/cgpa-tracker/internal/infrastructure/persistence/file"
	"github.com/alem-hub/cgpa-tracker/internal/interface/cli"
	"github.com/alem-hub/cgpa-tracker/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. НАСТРОЙКА ЛОГИРОВАНИЯ
	// Лог пишется в stderr, чтобы не мешаться с интерактивным экраном.
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
	}).With(logger.String("app", cfg.App.Name))

	log.Debug("starting CGPA Tracker",
		logger.String("version", cfg.App.Version),
		logger.DataPath(cfg.Data.Path),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ИНИЦИАЛИЗАЦИЯ ХРАНИЛИЩА И КЭША
	// ─────────────────────────────────────────────────────────────────────────
	repo := file.NewTranscriptRepository(cfg.Data.Path, log)
	reportCache := cache.NewReportCache(cfg.Observability.ReportCacheTTL)

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ИНИЦИАЛИЗАЦИЯ ДОМЕНА И APPLICATION LAYER
	// ─────────────────────────────────────────────────────────────────────────
	t := transcript.New()

	addHandler := command.NewAddSemesterHandler(t, reportCache, log)
	saveHandler := command.NewSaveTranscriptHandler(t, repo, log)
	loadHandler := command.NewLoadTranscriptHandler(t, repo, reportCache, log)
	reportHandler := query.NewGetReportHandler(t, reportCache)

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ЗАПУСК ИНТЕРАКТИВНОГО МЕНЮ
	// ─────────────────────────────────────────────────────────────────────────
	menu := cli.NewMenu(cli.MenuConfig{
		Reader: cli.NewReader(os.Stdin, os.Stdout),
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Bounds: cli.InputBounds{
			MaxCourses: cfg.Input.MaxCourses,
			GradeMin:   cfg.Input.GradeMin,
			GradeMax:   cfg.Input.GradeMax,
			CreditMin:  cfg.Input.CreditMin,
			CreditMax:  cfg.Input.CreditMax,
		},
		Logger:    log,
		Add:       addHandler,
		Save:      saveHandler,
		Load:      loadHandler,
		GetReport: reportHandler,
	})

	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("menu loop: %w", err)
	}

	log.Debug("CGPA Tracker stopped")
	return nil
}
