package port

// ProgressReporter получает шаги имитации обработки (0..100)
type ProgressReporter interface {
	Report(percent int)
}

// ProgressFunc адаптер функции к ProgressReporter
type ProgressFunc func(percent int)

// Report вызывает f(percent)
func (f ProgressFunc) Report(percent int) { f(percent) }
