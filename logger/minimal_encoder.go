package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// ANSI colours (everforest palette)
const (
	colorReset     = "\x1b[0m"
	colorBold      = "\x1b[1m"
	colorTime      = "\x1b[38;5;107m" // mid green
	colorComponent = "\x1b[38;5;208m" // warm orange
	colorKey       = "\x1b[38;5;109m" // blue-green
	colorWarn      = "\x1b[38;5;179m"
	colorWarnBg    = "\x1b[48;5;58m"
	colorError     = "\x1b[38;5;167m"
	colorErrorBg   = "\x1b[48;5;52m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder is a calm, compact console encoder.
// Format: "13:04:35  WARN  serve.hub  Client dropped  remote=127.0.0.1:52289"
//
// Context fields added with Logger.With are kept in the embedded map encoder
// and printed after the entry's own fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown when it is not INFO
	if label := levelLabel(ent.Level); label != "" {
		final.AppendString("  ")
		final.AppendString(label)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if pairs := encodeFields(enc.Fields, fields); pairs != "" {
		final.AppendString("  ")
		final.AppendString(pairs)
	}

	final.AppendString("\n")
	return final, nil
}

// levelLabel returns bold + coloured + background for non-INFO levels
func levelLabel(level zapcore.Level) string {
	switch level {
	case zapcore.InfoLevel:
		return ""
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarn + "WARN" + colorReset
	default:
		return colorBold + colorErrorBg + colorError + level.CapitalString() + colorReset
	}
}

// encodeFields renders entry fields in call order, then context fields
// sorted by key. An entry field shadows a context field of the same key.
func encodeFields(context map[string]interface{}, fields []zapcore.Field) string {
	entry := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(entry)
	}

	var pairs []string
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		if v, ok := entry.Fields[f.Key]; ok {
			pairs = append(pairs, formatPair(f.Key, v))
		}
	}

	keys := make([]string, 0, len(context))
	for k := range context {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, formatPair(k, context[k]))
	}

	return strings.Join(pairs, " ")
}

func formatPair(key string, value interface{}) string {
	return colorKey + key + colorReset + "=" + fmt.Sprintf("%v", value)
}
