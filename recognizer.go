// Package deeplink matches URLs against templates of typed path parts and
// query parameters. The values extracted by the most specific match are
// handed to a factory that builds the deep link.
package deeplink

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"slices"
	"sync/atomic"

	"github.com/valyala/fasthttp"
)

// Factory builds a deep link from the URL and the values its template
// extracted. Returning an error turns the match into a miss; return
// ErrRejected to decline without a warning being logged.
type Factory[T any] func(u *url.URL, values Values) (T, error)

// Entry is a registered template and the factory invoked when it wins.
type Entry[T any] struct {
	Name     string
	Template Template
	New      Factory[T]
}

// Recognizer matches URLs against registered templates and builds a T from
// the most specific one that fits.
type Recognizer[T any] struct {
	entries atomic.Pointer[[]Entry[T]]

	// Logger receives a debug record per match and a warning when a factory
	// fails. Nothing is logged when it is nil.
	Logger *slog.Logger
}

// New returns a new Recognizer holding the given entries.
func New[T any](entries ...Entry[T]) *Recognizer[T] {
	r := &Recognizer[T]{}
	r.Update(entries)

	return r
}

// Group returns a new group of r whose templates start with prefix's path
// parts.
func (r *Recognizer[T]) Group(prefix Template) *Group[T] {
	return &Group[T]{recognizer: r, prefix: prefix}
}

// Add registers a template under name.
//
// WARNING: Not safe for concurrent use with other calls to Add. Use Update
// to swap the whole registry while matching goes on.
func (r *Recognizer[T]) Add(name string, template Template, factory Factory[T]) {
	switch {
	case len(name) == 0:
		panic("deep link name must not be empty")
	case factory == nil:
		panic("factory must not be nil for deep link '" + name + "'")
	}

	entries := append(r.Entries(), Entry[T]{Name: name, Template: template, New: factory})
	r.entries.Store(&entries)
}

// Update replaces every registered entry at once. Matches already running
// keep using the entries they started with.
func (r *Recognizer[T]) Update(entries []Entry[T]) {
	entries = slices.Clone(entries)
	r.entries.Store(&entries)
}

// Entries returns the registered entries in registration order.
func (r *Recognizer[T]) Entries() []Entry[T] {
	if p := r.entries.Load(); p != nil {
		return slices.Clone(*p)
	}

	return nil
}

// Lookup finds the entry whose template matches u with the highest
// priority, without invoking its factory. When several entries tie, the one
// registered first wins.
func (r *Recognizer[T]) Lookup(u *url.URL) (Entry[T], Values, bool) {
	var (
		entries []Entry[T]
		best    = -1
		values  Values
		matched int
	)

	if p := r.entries.Load(); p != nil {
		entries = *p
	}

	parts := Decompose(u)

	for i := range entries {
		v, ok := Extract(entries[i].Template, parts)
		if !ok {
			continue
		}

		matched++

		if best < 0 || entries[i].Template.Outranks(entries[best].Template) {
			best, values = i, v
		}
	}

	if best < 0 {
		r.debug("no deep link template matched", slog.String("url", u.String()))
		return Entry[T]{}, Values{}, false
	}

	r.debug("deep link template matched",
		slog.String("url", u.String()),
		slog.String("template", entries[best].Name),
		slog.Int("candidates", matched),
	)

	return entries[best], values, true
}

// Match returns the deep link built from the entry matching u.
func (r *Recognizer[T]) Match(u *url.URL) (T, bool) {
	var zero T

	entry, values, ok := r.Lookup(u)
	if !ok {
		return zero, false
	}

	link, err := entry.New(u, values)
	if err != nil {
		if r.Logger != nil {
			level := slog.LevelWarn
			if errors.Is(err, ErrRejected) {
				level = slog.LevelDebug
			}

			r.Logger.LogAttrs(context.Background(), level, "deep link factory failed",
				slog.String("url", u.String()),
				slog.String("template", entry.Name),
				slog.Any("error", err),
			)
		}

		return zero, false
	}

	return link, true
}

// MatchString parses raw and matches it. Unparsable URLs never match.
func (r *Recognizer[T]) MatchString(raw string) (T, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		r.debug("invalid deep link url", slog.String("url", raw), slog.Any("error", err))

		var zero T
		return zero, false
	}

	return r.Match(u)
}

// MatchRequest matches the request URI of req exactly as it was received.
// Absolute URIs keep their host unchanged, so a custom-scheme host such as
// "app://Product/42" is matched case-sensitively. Request URIs carry no
// fragment.
func (r *Recognizer[T]) MatchRequest(req *fasthttp.Request) (T, bool) {
	return r.MatchString(string(req.Header.RequestURI()))
}

func (r *Recognizer[T]) debug(msg string, attrs ...slog.Attr) {
	if r.Logger != nil {
		r.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}
