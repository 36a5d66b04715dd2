package deeplink

import (
	"fmt"

	gotilsbytes "github.com/savsgio/gotils/bytes"
	"github.com/valyala/fasthttp"
)

// MatchedDeepLinkParam is the user value key under which Handler stores the
// deep link matched for a request.
var MatchedDeepLinkParam = fmt.Sprintf("__matchedDeepLink::%s__", gotilsbytes.Rand(make([]byte, 15)))

// Handler returns a request handler that matches the raw request URI and,
// when a deep link is recognized, stores it as the MatchedDeepLinkParam user
// value before calling next. next is called either way.
func (r *Recognizer[T]) Handler(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	if next == nil {
		panic("handler must not be nil")
	}

	return func(ctx *fasthttp.RequestCtx) {
		if link, ok := r.MatchRequest(&ctx.Request); ok {
			ctx.SetUserValue(MatchedDeepLinkParam, link)
		}

		next(ctx)
	}
}

// FromContext returns the deep link stored by Handler.
func FromContext[T any](ctx *fasthttp.RequestCtx) (T, bool) {
	link, ok := ctx.UserValue(MatchedDeepLinkParam).(T)
	return link, ok
}
