package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/simple-flights/internal/interfaces/global"
	"io"
	"log/slog"
	"os"
	"sync"
)

const (
	// LevelCritical 后端不可用等严重错误, 进程继续运行
	LevelCritical = slog.Level(12)
	LevelFatal    = slog.Level(16)
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelCritical:   color.New(color.FgHiRed, color.Bold),
	LevelFatal:      color.New(color.BgRed, color.FgWhite, color.Bold),
}

func levelLabel(level slog.Level) string {
	var label string
	switch level {
	case LevelCritical:
		label = "CRITICAL"
	case LevelFatal:
		label = "FATAL"
	default:
		label = level.String()
	}
	if c, ok := levelColors[level]; ok {
		return c.Sprint(label)
	}
	return label
}

type Logger struct {
	writer io.Writer
	level  *slog.LevelVar
	logger *slog.Logger
	once   sync.Once
}

func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

func NewLoggerWithWriter(writer io.Writer) *Logger {
	level := &slog.LevelVar{}
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey {
				if lvl, ok := attr.Value.Any().(slog.Level); ok {
					return slog.String(slog.LevelKey, levelLabel(lvl))
				}
			}
			return attr
		},
	})
	return &Logger{writer: writer, level: level, logger: slog.New(handler)}
}

// Init 设置日志级别, 并将其设为 slog 的默认日志
func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
	slog.SetDefault(l.logger)
}

func (l *Logger) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(_ context.Context) error {
		var err error
		l.once.Do(func() {
			if l.writer == os.Stdout || l.writer == os.Stderr {
				return
			}
			if closer, ok := l.writer.(io.Closer); ok {
				err = closer.Close()
			}
		})
		return err
	})
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	l.logger.Log(context.Background(), level, msg, v...)
}

func (l *Logger) Debug(msg string, v ...interface{}) { l.log(slog.LevelDebug, msg, v...) }

func (l *Logger) DebugF(msg string, v ...interface{}) { l.log(slog.LevelDebug, fmt.Sprintf(msg, v...)) }

func (l *Logger) Info(msg string, v ...interface{}) { l.log(slog.LevelInfo, msg, v...) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.log(slog.LevelInfo, fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, v ...interface{}) { l.log(slog.LevelWarn, msg, v...) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.log(slog.LevelWarn, fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, v ...interface{}) { l.log(slog.LevelError, msg, v...) }

func (l *Logger) ErrorF(msg string, v ...interface{}) { l.log(slog.LevelError, fmt.Sprintf(msg, v...)) }

func (l *Logger) Critical(msg string, v ...interface{}) { l.log(LevelCritical, msg, v...) }

func (l *Logger) CriticalF(msg string, v ...interface{}) {
	l.log(LevelCritical, fmt.Sprintf(msg, v...))
}

func (l *Logger) Fatal(msg string, v ...interface{}) { l.log(LevelFatal, msg, v...) }

func (l *Logger) FatalF(msg string, v ...interface{}) { l.log(LevelFatal, fmt.Sprintf(msg, v...)) }
