package transcript

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Контракт для работы с хранилищем. Реализация находится в
// infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции сохранения и загрузки зачётной книжки.
type Repository interface {
	// Save записывает все семестры в хранилище, затирая прежнее содержимое.
	// Возвращает shared.ErrFileUnavailable, если хранилище не открывается,
	// и shared.ErrWriteFailed при ошибке записи после успешного открытия.
	Save(ctx context.Context, t *Transcript) error

	// Load читает все семестры из хранилища.
	// Возвращает shared.ErrNoData, если данных ещё нет,
	// и shared.ErrCorruptData при обрыве данных посреди записи курса.
	Load(ctx context.Context) ([]*Semester, error)
}
