package remotecall

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/inoxlang/protohelpers/internal/urlfor"
)

var (
	ErrUnknownCallbackEvent    = errors.New("unknown callback event")
	ErrInvalidPosition         = errors.New("invalid insertion position, valid positions are top, bottom, before and after")
	ErrConflictingUpdateTarget = errors.New("a single update target cannot be combined with success/failure targets")
)

// Options describes a remote call, the zero value describes an asynchronous request to the root URL.
type Options struct {
	URL urlfor.Options `yaml:"url,omitempty"`

	//Element(s) whose innerHTML is replaced with the response text.
	Update Update `yaml:"update,omitempty"`

	//Where the response is inserted relatively to the updated element, the content is replaced if not set.
	Position Position `yaml:"position,omitempty"`

	Method      string `yaml:"method,omitempty"`
	Synchronous bool   `yaml:"synchronous,omitempty"`

	//Whether <script> elements in the response are evaluated, defaults to true.
	EvalScripts *bool `yaml:"eval-scripts,omitempty"`

	//Parameters: Form takes precedence over Submit that takes precedence over With.
	Form   bool   `yaml:"form,omitempty"`
	Submit string `yaml:"submit,omitempty"`
	With   string `yaml:"with,omitempty"`

	//JavaScript code executed on Ajax events, the XMLHttpRequest is available as 'request'.
	Callbacks map[Event]string `yaml:"callbacks,omitempty"`

	Before    string `yaml:"before,omitempty"`
	After     string `yaml:"after,omitempty"`
	Condition string `yaml:"condition,omitempty"`
	Confirm   string `yaml:"confirm,omitempty"`
}

// Update is either a single Target or a pair of Success and Failure targets.
type Update struct {
	Target  string `yaml:"target,omitempty"`
	Success string `yaml:"success,omitempty"`
	Failure string `yaml:"failure,omitempty"`
}

func (u Update) IsZero() bool {
	return u == Update{}
}

func (u Update) isSplit() bool {
	return u.Success != "" || u.Failure != ""
}

type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
)

func (p Position) normalize() (Position, error) {
	lower := Position(strings.ToLower(string(p)))
	switch lower {
	case PositionTop, PositionBottom, PositionBefore, PositionAfter:
		return lower, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPosition, string(p))
}

// An Event is either the name of an Ajax life-cycle event or an HTTP status code (100 to 599).
type Event string

const (
	OnCreate        Event = "create"
	OnUninitialized Event = "uninitialized"
	OnLoading       Event = "loading"
	OnLoaded        Event = "loaded"
	OnInteractive   Event = "interactive"
	OnComplete      Event = "complete"
	OnFailure       Event = "failure"
	OnSuccess       Event = "success"

	MIN_STATUS_CODE_EVENT = 100
	MAX_STATUS_CODE_EVENT = 599
)

var NAMED_EVENTS = []Event{OnCreate, OnUninitialized, OnLoading, OnLoaded, OnInteractive, OnComplete, OnFailure, OnSuccess}

func StatusCodeEvent(code int) Event {
	return Event(strconv.Itoa(code))
}

// CallbackName returns the name of the Ajax option for the event: onComplete, on404, ...
func (e Event) CallbackName() (string, error) {
	for _, named := range NAMED_EVENTS {
		if e == named {
			return "on" + strings.ToUpper(string(e[:1])) + string(e[1:]), nil
		}
	}

	code, err := strconv.Atoi(string(e))
	if err != nil || code < MIN_STATUS_CODE_EVENT || code > MAX_STATUS_CODE_EVENT || strconv.Itoa(code) != string(e) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCallbackEvent, string(e))
	}
	return "on" + string(e), nil
}
