package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/todo-service/internal/rejection"
)

// HandlerFunc is a route endpoint. Returning a non-nil rejection hands the
// failure to the terminal renderer; handlers that return nil have written
// their own response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, p Params) *rejection.Rejection

// Route binds a method, a path pattern, and any extra predicates to a
// handler.
type Route struct {
	Method     string
	Pattern    Pattern
	Predicates []Predicate
	Handler    HandlerFunc
}

// Router evaluates routes in declaration order with short-circuit
// alternation: the first full match wins.
type Router struct {
	log    *slog.Logger
	routes []Route
}

func New(log *slog.Logger) *Router {
	return &Router{log: log}
}

// Handle appends a route. Declaration order is significant only for routes
// whose shapes overlap.
func (rt *Router) Handle(method string, pattern Pattern, h HandlerFunc, preds ...Predicate) {
	rt.routes = append(rt.routes, Route{
		Method:     method,
		Pattern:    pattern,
		Predicates: preds,
		Handler:    h,
	})
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			rt.log.Error("panic while serving request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("panic", rec))
			rejection.Render(w, rt.log, rejection.Wrap(rejection.Internal, fmt.Errorf("panic: %v", rec)))
		}
	}()

	segments := splitPath(r.URL.Path)

	var best *rejection.Rejection
	for _, route := range rt.routes {
		params := Params{}

		ok, rej := route.Pattern.match(segments, params)
		if !ok {
			best = rejection.MoreSpecific(best, rej)
			continue
		}

		if r.Method != route.Method {
			best = rejection.MoreSpecific(best, rejection.New(rejection.MethodNotAllowed))
			continue
		}

		if rej := checkPredicates(route.Predicates, r); rej != nil {
			best = rejection.MoreSpecific(best, rej)
			continue
		}

		if rej := route.Handler(w, r, params); rej != nil {
			rejection.Render(w, rt.log, rej)
		}
		return
	}

	rejection.Render(w, rt.log, best)
}

func checkPredicates(preds []Predicate, r *http.Request) *rejection.Rejection {
	for _, pred := range preds {
		if rej := pred(r); rej != nil {
			return rej
		}
	}
	return nil
}
