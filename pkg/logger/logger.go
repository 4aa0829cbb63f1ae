package logger

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger keeps everything it writes in a buffer so the demo page can show
// the log of the last computation next to the chart.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
}

// New builds a debug level logger writing into its own buffer and, in
// addition, into every given sink (stderr for the CLI).
func New(sinks ...zapcore.WriteSyncer) *ZapLogger {
	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(logBuf), zap.DebugLevel)}
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(encoder, sink, zap.InfoLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

// Nop discards everything.
func Nop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		logBuf: &bytes.Buffer{},
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colored aurora.Value
	switch level {
	case zapcore.DebugLevel:
		colored = aurora.Cyan(level.String())
	case zapcore.InfoLevel:
		colored = aurora.Green(level.String())
	case zapcore.WarnLevel:
		colored = aurora.Yellow(level.String())
	case zapcore.ErrorLevel:
		colored = aurora.Red(level.String())
	default:
		enc.AppendString(level.String())
		return
	}
	enc.AppendString(colored.String())
}

var ansiCode = regexp.MustCompile(`\x1b\[(\d+)m`)

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// ansiToHTML converts ANSI color codes to spans with inline styles. The rest
// of the text is escaped.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiCode.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(html.EscapeString(input[lastIndex:start]))
		}

		code := input[match[2]:match[3]]
		if open {
			result.WriteString("</span>")
			open = false
		}
		if color, ok := colorMap[code]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(html.EscapeString(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// Text returns the raw buffered log.
func (z *ZapLogger) Text() string {
	return z.logBuf.String()
}

// HTML returns the buffered log ready to be embedded into the page.
func (z *ZapLogger) HTML() string {
	return ansiToHTML(z.logBuf.String())
}

func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
