package observe

import (
	"fmt"

	"github.com/inoxlang/protohelpers/internal/jsgen"
	"github.com/inoxlang/protohelpers/internal/markup"
	"github.com/inoxlang/protohelpers/internal/remotecall"
)

// ObserveField observes the field with the DOM id fieldID and calls a callback when its content has
// changed, the default callback is a remote call sending the value of the field. The field is polled
// every opts.Frequency seconds if the frequency is positive, otherwise change events are used.
//
// Example: ObserveField("suggest", ObserveOptions{Frequency: Seconds(0.25), Callback: Remote{With: "q", ...}})
// generates new Form.Element.Observer('suggest', 0.25, function(element, value) {new Ajax.Updater(...)}).
func (h *Helper) ObserveField(fieldID string, opts ObserveOptions) (string, error) {
	if opts.Frequency != nil && *opts.Frequency > 0 {
		return h.buildObserver(FIELD_TIMED_OBSERVER_CONSTRUCTOR, fieldID, opts)
	}
	return h.buildObserver(FIELD_EVENT_OBSERVER_CONSTRUCTOR, fieldID, opts)
}

// ObserveForm observes the form with the DOM id formID and calls a callback when its content has
// changed, the default callback is a remote call sending the serialized form. Unlike ObserveField any
// frequency, including zero, selects polling.
func (h *Helper) ObserveForm(formID string, opts ObserveOptions) (string, error) {
	if opts.Frequency != nil {
		return h.buildObserver(FORM_TIMED_OBSERVER_CONSTRUCTOR, formID, opts)
	}
	return h.buildObserver(FORM_EVENT_OBSERVER_CONSTRUCTOR, formID, opts)
}

// PeriodicallyCallRemote performs the remote call described by opts every opts.Frequency seconds,
// it is usually used to update an element with the response. Example:
//
//	new PeriodicalExecuter(function() {new Ajax.Updater('avg', '/grades/get_averages', {asynchronous:true, evalScripts:true})}, 10)
func (h *Helper) PeriodicallyCallRemote(opts PeriodicalOptions) (string, error) {
	frequency := h.defaultPeriodicalFrequency
	if opts.Frequency != nil {
		frequency = *opts.Frequency
	}

	remoteCall, err := h.compiler.CompileRemoteCall(opts.Remote)
	if err != nil {
		return "", err
	}

	executer := jsgen.New{
		Constructor: PERIODICAL_EXECUTER_CONSTRUCTOR,
		Args: []jsgen.Expr{
			jsgen.Func{Body: jsgen.Raw(remoteCall)},
			jsgen.Number(frequency),
		},
	}

	return h.wrap(PERIODICAL_EXECUTER_CONSTRUCTOR, "", executer)
}

// LinkToRemote returns a link performing the remote call described by opts when clicked.
func (h *Helper) LinkToRemote(name string, opts remotecall.Options, linkOpts markup.LinkOptions) (string, error) {
	remoteCall, err := h.compiler.CompileRemoteCall(opts)
	if err != nil {
		return "", err
	}
	return h.LinkToFunction(name, remoteCall, linkOpts)
}

// LinkToFunction returns a link executing function when clicked.
func (h *Helper) LinkToFunction(name string, function string, linkOpts markup.LinkOptions) (string, error) {
	if err := h.checkOutput(function); err != nil {
		return "", err
	}

	link := markup.LinkToFunction(name, function, linkOpts)

	h.logger.Debug().Str("helper", "link").Str("name", name).Msg("link generated")
	return link, nil
}

func (h *Helper) buildObserver(constructor string, targetID string, opts ObserveOptions) (string, error) {
	var body string

	switch callback := opts.Callback.(type) {
	case Function:
		body = string(callback)
	case Remote:
		code, err := h.compileObserverRemoteCall(callback)
		if err != nil {
			return "", err
		}
		body = code
	case nil:
		code, err := h.compileObserverRemoteCall(Remote{})
		if err != nil {
			return "", err
		}
		body = code
	default:
		return "", fmt.Errorf("unsupported callback type %T", callback)
	}

	observer := jsgen.New{
		Constructor: constructor,
		Args:        []jsgen.Expr{jsgen.Quoted(targetID)},
	}

	//The frequency is passed even to event based observers.
	if opts.Frequency != nil {
		observer.Args = append(observer.Args, jsgen.Number(*opts.Frequency))
	}

	observer.Args = append(observer.Args, jsgen.Func{
		Params: OBSERVER_CALLBACK_PARAMS,
		Body:   jsgen.Raw(body),
	})

	return h.wrap(constructor, targetID, observer)
}

func (h *Helper) compileObserverRemoteCall(remote Remote) (string, error) {
	opts := remotecall.Options(remote)
	opts.With = NormalizeWith(opts.With)
	return h.compiler.CompileRemoteCall(opts)
}

// NormalizeWith turns a parameter name into an expression sending the observed value under this
// name, expressions are returned as is. The empty string is the absent option: it becomes the bare
// value, not "'=' + encodeURIComponent(value)".
func NormalizeWith(with string) string {
	switch {
	case with == "":
		return VALUE_VAR_NAME
	case !WITH_EXPRESSION_PATTERN.MatchString(with):
		return "'" + with + "=' + encodeURIComponent(" + VALUE_VAR_NAME + ")"
	default:
		return with
	}
}

func (h *Helper) wrap(constructor string, targetID string, expr jsgen.Expr) (string, error) {
	code := jsgen.Render(expr)

	if err := h.checkOutput(code); err != nil {
		return "", err
	}

	if h.compactOutput {
		minified, err := jsgen.Minify(code)
		if err != nil {
			return "", fmt.Errorf("failed to minify the script of %s: %w", constructor, err)
		}
		code = minified
	}

	h.logger.Debug().
		Str("helper", "script").
		Str("constructor", constructor).
		Str("target", targetID).
		Msg("script generated")

	return markup.JavascriptTag(code, h.script), nil
}

func (h *Helper) checkOutput(code string) error {
	if !h.validateOutput {
		return nil
	}
	return jsgen.Check(code)
}
