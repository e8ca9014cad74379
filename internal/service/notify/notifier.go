package notify

// Notifier fire-and-forget канал уведомлений пользователю об успехах и
// ошибках. Ядро вызывает его, но не зависит от результата: реализация
// принадлежит composition root, а не глобальному состоянию.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// LogNotifier реализация Notifier поверх логгера сервиса
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает новый экземпляр LogNotifier
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Success сообщает об успешном событии
func (n *LogNotifier) Success(message string) {
	n.log.Info("notification: %s", message)
}

// Error сообщает об ошибочном событии
func (n *LogNotifier) Error(message string) {
	n.log.Warn("notification: %s", message)
}
