package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Logger interfejs do logowania błędów
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler obsługuje panic w gorutynach
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler tworzy nowy handler
func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// SafeGo uruchamia gorutynę z obsługą panic
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rh.logger.Errorf("Panic in goroutine: %v\nStack trace:\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}

// SafeGoWithContext uruchamia gorutynę z kontekstem i obsługą panic
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				rh.logger.Errorf("Panic in goroutine (with context): %v\nStack trace:\n%s", r, debug.Stack())
			}
		}()
		fn(ctx)
	}()
}

// SimpleLogger - prosta implementacja Logger oparta na fmt.Printf
type SimpleLogger struct{}

func (l *SimpleLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR] "+format+"\n", args...)
}

// DefaultRecoveryHandler - globalny handler z prostym logowaniem
var DefaultRecoveryHandler = NewRecoveryHandler(&SimpleLogger{})

// SafeGo - skrót do uruchomienia bezpiecznej gorutyny
func SafeGo(fn func()) {
	DefaultRecoveryHandler.SafeGo(fn)
}

// SafeGoWithContext - skrót do uruchomienia bezpiecznej gorutyny z kontekstem
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	DefaultRecoveryHandler.SafeGoWithContext(ctx, fn)
}
