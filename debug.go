package canvasutils

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger receives debug diagnostics. It is a no-op until SetLogger is called
// or a Scene enables debug mode.
var logger = zap.NewNop()

// loggerInstalled is true once a non-nil logger has been set.
var loggerInstalled bool

// globalDebug mirrors the most recently set Scene debug flag so that sprite
// and group operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// SetLogger installs l as the package logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	loggerInstalled = l != nil
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

// newDebugLogger builds the console logger installed by debug mode when the
// application has not provided one.
func newDebugLogger() *zap.Logger {
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:       true,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("canvasutils")
}

// frameStats holds per-frame timing. Only populated when Scene.debug is true.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	layers     int
}

func debugLogUpdate(stats frameStats) {
	logger.Debug("frame update",
		zap.Duration("update", stats.updateTime),
		zap.Int("layers", stats.layers))
}

func debugLogDraw(stats frameStats) {
	logger.Debug("frame draw",
		zap.Duration("draw", stats.drawTime),
		zap.Int("layers", stats.layers))
}

// debugMaxGroupSize is the member count above which Add warns.
const debugMaxGroupSize = 1000

func debugCheckGroupSize(name string, n int) {
	if n > debugMaxGroupSize {
		logger.Warn("group exceeds member threshold",
			zap.String("group", name),
			zap.Int("members", n),
			zap.Int("threshold", debugMaxGroupSize))
	}
}

func debugLogStaleOverwrite(name string, prev, next *Sprite) {
	logger.Debug("group single replaced sprite without detaching it",
		zap.String("group", name),
		zap.Uint32("previous", prev.ID),
		zap.String("previousName", prev.Name),
		zap.Uint32("next", next.ID))
}

func debugLogStaleEmpty(name string, n int) {
	logger.Debug("group emptied without detaching members",
		zap.String("group", name),
		zap.Int("members", n))
}

func debugLogKill(s *Sprite, containers int) {
	logger.Debug("sprite killed",
		zap.Uint32("sprite", s.ID),
		zap.String("name", s.Name),
		zap.Int("containers", containers))
}
