package observe

import (
	"github.com/inoxlang/protohelpers/internal/remotecall"
)

// ObserveOptions configures ObserveField and ObserveForm.
type ObserveOptions struct {
	//Polling period in seconds, event based observation is used if nil. Note that ObserveField
	//also uses event based observation for zero and negative frequencies.
	Frequency *float64

	//Code executed when the observed value changes, defaults to a remote call sending the value.
	Callback Callback
}

// PeriodicalOptions configures PeriodicallyCallRemote.
type PeriodicalOptions struct {
	//Period in seconds, the helper's default (10 seconds) is used if nil.
	Frequency *float64

	Remote remotecall.Options
}

// A Callback is the body of the function called by an observer: either a Function or a Remote call.
type Callback interface {
	isCallback()
}

// Function is JavaScript code used as the body of a function(element, value) callback: element is
// the observed DOM element and value its value at the time the observer is triggered.
type Function string

func (Function) isCallback() {}

// Remote is a remote call whose parameters default to the observed value. The With option accepts
// either a JavaScript expression ("'q=' + value", "Form.Element.serialize('other-field')") or a
// parameter name: "q" is shorthand for "'q=' + encodeURIComponent(value)". An empty With is treated
// as absent and sends the bare value, there is no way to send the value under an empty name.
type Remote remotecall.Options

func (Remote) isCallback() {}

// Seconds returns a pointer to s, it is meant to be used as a Frequency.
func Seconds(s float64) *float64 {
	return &s
}
