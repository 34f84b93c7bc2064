package callback

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"
)

// MaxDataSize is the Telegram limit for callback_data, in bytes.
const MaxDataSize = 64

const (
	sep = "|"
	// telebot помечает данные кнопок с Unique этим байтом.
	uniqueMark = "\f"
	// Пустая строка как значение; экранирование никогда не даёт одиночный "%".
	emptyString = "%"
)

var (
	ErrMalformedToken = errors.New("malformed callback token")
	ErrTokenTooLarge  = errors.New("callback token too large")
)

var escaper = strings.NewReplacer("%", "%25", "|", "%7C")

// Encode serializes t as "prefix|field|field". The result, as sent by telebot
// (with the leading \f), never exceeds MaxDataSize.
func Encode(t Token) (string, error) {
	w := &writer{}
	t.writeFields(w)

	var b strings.Builder
	b.WriteString(t.Prefix())
	for _, seg := range w.segs {
		b.WriteString(sep)
		b.WriteString(seg)
	}
	s := b.String()

	if size := len(uniqueMark) + len(s); size > MaxDataSize {
		return "", fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTokenTooLarge, t.Prefix(), size, MaxDataSize)
	}
	return s, nil
}

// MustEncode panics on error. Tokens built from fixed schemas only.
func MustEncode(t Token) string {
	s, err := Encode(t)
	if err != nil {
		panic(err)
	}
	return s
}

// Button builds an inline button whose Unique is the token prefix, so that
// telebot routes presses to the handler registered for that prefix.
func Button(text string, t Token) (telebot.InlineButton, error) {
	s, err := Encode(t)
	if err != nil {
		return telebot.InlineButton{}, err
	}
	unique, data, _ := strings.Cut(s, sep)
	return telebot.InlineButton{Unique: unique, Text: text, Data: data}, nil
}

// Decode parses a string produced by Encode. A leading \f, as delivered by
// telebot for unrouted callbacks, is accepted.
func Decode(raw string) (Token, error) {
	raw = strings.TrimPrefix(raw, uniqueMark)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedToken)
	}

	segs := strings.Split(raw, sep)
	decode, ok := decoders[segs[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown prefix %q", ErrMalformedToken, segs[0])
	}

	r := &reader{segs: segs[1:]}
	t := decode(r)
	if r.err == nil && r.pos != len(r.segs) {
		r.fail("%d fields, want %d", len(r.segs), r.pos)
	}
	if r.err != nil {
		return nil, fmt.Errorf("%s: %w", segs[0], r.err)
	}
	return t, nil
}

// FromCallback decodes a press routed by telebot, where Unique and Data are
// already split apart.
func FromCallback(cb *telebot.Callback) (Token, error) {
	if cb == nil {
		return nil, fmt.Errorf("%w: no callback", ErrMalformedToken)
	}
	if cb.Unique == "" {
		return Decode(cb.Data)
	}
	if cb.Data == "" {
		return Decode(cb.Unique)
	}
	return Decode(cb.Unique + sep + cb.Data)
}

type writer struct {
	segs []string
}

func (w *writer) String(s string) {
	if s == "" {
		w.segs = append(w.segs, emptyString)
		return
	}
	w.segs = append(w.segs, escaper.Replace(s))
}

func (w *writer) OptString(s *string) {
	if s == nil {
		w.segs = append(w.segs, "")
		return
	}
	w.String(*s)
}

func (w *writer) Int(v int64) {
	w.segs = append(w.segs, strconv.FormatInt(v, 10))
}

func (w *writer) OptInt(v *int64) {
	if v == nil {
		w.segs = append(w.segs, "")
		return
	}
	w.Int(*v)
}

func (w *writer) Float(f float64) {
	w.segs = append(w.segs, strconv.FormatFloat(f, 'g', -1, 64))
}

// reader remembers the first error; later reads return zero values.
type reader struct {
	segs []string
	pos  int
	err  error
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s", ErrMalformedToken, fmt.Sprintf(format, args...))
	}
}

// next returns the raw segment and false when the field is absent.
func (r *reader) next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if r.pos >= len(r.segs) {
		r.fail("missing field %d", r.pos+1)
		return "", false
	}
	seg := r.segs[r.pos]
	r.pos++
	return seg, seg != ""
}

func (r *reader) required() (string, bool) {
	seg, ok := r.next()
	if !ok && r.err == nil {
		r.fail("field %d is required", r.pos)
	}
	return seg, ok
}

func (r *reader) unescape(seg string) string {
	if seg == emptyString {
		return ""
	}
	s, err := url.PathUnescape(seg)
	if err != nil {
		r.fail("field %d: %v", r.pos, err)
		return ""
	}
	return s
}

func (r *reader) String() string {
	seg, ok := r.required()
	if !ok {
		return ""
	}
	return r.unescape(seg)
}

func (r *reader) OptString() *string {
	seg, ok := r.next()
	if !ok {
		return nil
	}
	s := r.unescape(seg)
	if r.err != nil {
		return nil
	}
	return &s
}

func (r *reader) parseInt(seg string) int64 {
	v, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		r.fail("field %d: %v", r.pos, err)
	}
	return v
}

func (r *reader) Int() int64 {
	seg, ok := r.required()
	if !ok {
		return 0
	}
	return r.parseInt(seg)
}

func (r *reader) OptInt() *int64 {
	seg, ok := r.next()
	if !ok {
		return nil
	}
	v := r.parseInt(seg)
	if r.err != nil {
		return nil
	}
	return &v
}

func (r *reader) Float() float64 {
	seg, ok := r.required()
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(seg, 64)
	if err != nil {
		r.fail("field %d: %v", r.pos, err)
	}
	return f
}
