package logger

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// MessageKey is the key of the message in JSON output, and the field key
// that carries structured messages written through Log.
const MessageKey = "message"

var levelColors = map[zapcore.Level]int{
	zapcore.DebugLevel: 34,
	zapcore.InfoLevel:  32,
	zapcore.WarnLevel:  33,
}

// formatTime renders t as DD/MM/YYYY - H:mm:ss.
func formatTime(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d - %d:%02d:%02d",
		t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute(), t.Second())
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(formatTime(t))
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(l.String() + ":")
}

func encodeColorLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color, ok := levelColors[l]
	if !ok {
		color = 31
	}
	enc.AppendString(fmt.Sprintf("\x1b[%dm%s\x1b[0m:", color, l.String()))
}

// textEncoder writes "time level: message" lines.
type textEncoder struct {
	zapcore.Encoder
}

func newTextEncoder(color bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       MessageKey,
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       encodeTime,
		EncodeLevel:      encodeLevel,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if color {
		cfg.EncodeLevel = encodeColorLevel
	}
	return &textEncoder{Encoder: zapcore.NewConsoleEncoder(cfg)}
}

func (e *textEncoder) Clone() zapcore.Encoder {
	return &textEncoder{Encoder: e.Encoder.Clone()}
}

func (e *textEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	if obj, rest, ok := splitMessage(ent, fields); ok {
		ent.Message = indent(obj)
		fields = rest
	}
	return e.Encoder.EncodeEntry(ent, fields)
}

// jsonEncoder writes one JSON object per record. The message is always
// emitted as a field so structured messages stay nested objects.
type jsonEncoder struct {
	zapcore.Encoder
}

func newJSONEncoder() zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	return &jsonEncoder{Encoder: zapcore.NewJSONEncoder(cfg)}
}

func (e *jsonEncoder) Clone() zapcore.Encoder {
	return &jsonEncoder{Encoder: e.Encoder.Clone()}
}

func (e *jsonEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	if _, _, ok := splitMessage(ent, fields); !ok {
		fields = append([]zapcore.Field{zap.String(MessageKey, ent.Message)}, fields...)
	}
	return e.Encoder.EncodeEntry(ent, fields)
}

// splitMessage finds a structured message written by Log and returns it
// together with the remaining fields.
func splitMessage(ent zapcore.Entry, fields []zapcore.Field) (any, []zapcore.Field, bool) {
	if ent.Message != "" {
		return nil, fields, false
	}
	for i, f := range fields {
		if f.Key != MessageKey || f.Type != zapcore.ReflectType {
			continue
		}
		rest := make([]zapcore.Field, 0, len(fields)-1)
		rest = append(rest, fields[:i]...)
		rest = append(rest, fields[i+1:]...)
		return f.Interface, rest, true
	}
	return nil, fields, false
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
