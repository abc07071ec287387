package log

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

const (
	timeFormat     = "2006-01-02T15:04:05-0700"
	termTimeFormat = "01-02|15:04:05.000"
	floatFormat    = 'f'
	termMsgJust    = 40
)

// Format renders a Record into bytes ready for output.
type Format interface {
	Format(r *Record) []byte
}

// FormatFunc returns a new Format object which uses the given function to
// perform record formatting.
func FormatFunc(f func(*Record) []byte) Format {
	return formatFunc(f)
}

type formatFunc func(*Record) []byte

func (f formatFunc) Format(r *Record) []byte {
	return f(r)
}

// TerminalFormat formats records optimized for human readability on a
// terminal:
//
//	INFO [01-02|15:04:05.000] Generated corpus     category=ecrecover ok=34
//
// The message is padded so context columns line up across consecutive
// entries.
func TerminalFormat() Format {
	return FormatFunc(func(r *Record) []byte {
		b := &bytes.Buffer{}
		fmt.Fprintf(b, "%s [%s] %s", r.Lvl.AlignedString(), r.Time.Format(termTimeFormat), r.Msg)
		if len(r.Ctx) > 0 && len(r.Msg) < termMsgJust {
			b.Write(bytes.Repeat([]byte{' '}, termMsgJust-len(r.Msg)))
		}
		logfmt(b, r.Ctx)
		return b.Bytes()
	})
}

// LogfmtFormat prints records in logfmt format, one key=value pair per
// record, time and level first.
func LogfmtFormat() Format {
	return FormatFunc(func(r *Record) []byte {
		common := []interface{}{"t", r.Time, "lvl", r.Lvl}
		b := &bytes.Buffer{}
		logfmt(b, append(common, r.Ctx...))
		return b.Bytes()
	})
}

func logfmt(buf *bytes.Buffer, ctx []interface{}) {
	for i := 0; i < len(ctx); i += 2 {
		if i != 0 {
			buf.WriteByte(' ')
		}
		k, ok := ctx[i].(string)
		v := formatLogfmtValue(ctx[i+1])
		if !ok {
			k, v = errorKey, formatLogfmtValue(k)
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(v)
	}
	buf.WriteByte('\n')
}

// formatLogfmtValue formats a value for serialization.
func formatLogfmtValue(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case time.Time:
		return v.Format(timeFormat)
	case time.Duration:
		return v.String()
	case error:
		return escapeString(v.Error())
	case fmt.Stringer:
		return escapeString(v.String())
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), floatFormat, 3, 64)
	case float64:
		return strconv.FormatFloat(v, floatFormat, 3, 64)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)
	case string:
		return escapeString(v)
	default:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
			return escapeString(rv.String())
		}
		return escapeString(fmt.Sprintf("%+v", value))
	}
}

func escapeString(s string) string {
	needsQuotes := false
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			needsQuotes = true
			break
		}
	}
	if !needsQuotes {
		return s
	}
	return strconv.Quote(s)
}
