package remotecall

import (
	"fmt"
	"strings"

	"github.com/inoxlang/protohelpers/internal/jsgen"
	"github.com/inoxlang/protohelpers/internal/urlfor"
)

const (
	AJAX_REQUEST_CONSTRUCTOR = "Ajax.Request"
	AJAX_UPDATER_CONSTRUCTOR = "Ajax.Updater"

	FORM_SERIALIZE_THIS = "Form.serialize(this)"
)

// ForgeryProtection adds an authenticity token to the parameters of every remote call that does not
// serialize a form with Form.serialize(this).
type ForgeryProtection struct {
	TokenName string `yaml:"token-name"`
	Token     string `yaml:"token"`
}

// A Compiler turns remote call options into a JavaScript expression performing the call with
// Prototype's Ajax.Request or Ajax.Updater.
type Compiler struct {
	urls              urlfor.URLBuilder
	forgeryProtection *ForgeryProtection
}

func NewCompiler(urls urlfor.URLBuilder, forgeryProtection *ForgeryProtection) *Compiler {
	if urls == nil {
		urls = urlfor.Builder{}
	}
	return &Compiler{
		urls:              urls,
		forgeryProtection: forgeryProtection,
	}
}

// CompileRemoteCall returns the JavaScript code performing the remote call described by opts.
// Example: new Ajax.Updater('avg', '/grades/get_averages', {asynchronous:true, evalScripts:true}).
func (c *Compiler) CompileRemoteCall(opts Options) (string, error) {
	ajaxOptions, err := c.AjaxOptions(opts)
	if err != nil {
		return "", err
	}

	url, err := c.urls.URLFor(opts.URL)
	if err != nil {
		return "", fmt.Errorf("failed to build the URL of the remote call: %w", err)
	}

	call := jsgen.New{Constructor: AJAX_REQUEST_CONSTRUCTOR}

	switch {
	case opts.Update.isSplit():
		if opts.Update.Target != "" {
			return "", ErrConflictingUpdateTarget
		}
		var targets jsgen.PackedObject
		if opts.Update.Success != "" {
			targets = append(targets, jsgen.Property{Key: "success", Value: jsgen.Quoted(opts.Update.Success)})
		}
		if opts.Update.Failure != "" {
			targets = append(targets, jsgen.Property{Key: "failure", Value: jsgen.Quoted(opts.Update.Failure)})
		}
		call.Constructor = AJAX_UPDATER_CONSTRUCTOR
		call.Args = append(call.Args, targets)
	case opts.Update.Target != "":
		call.Constructor = AJAX_UPDATER_CONSTRUCTOR
		call.Args = append(call.Args, jsgen.Quoted(opts.Update.Target))
	}

	call.Args = append(call.Args, jsgen.Quoted(url), ajaxOptions)

	function := jsgen.Render(call)

	if opts.Before != "" {
		function = opts.Before + "; " + function
	}
	if opts.After != "" {
		function = function + "; " + opts.After
	}
	if opts.Condition != "" {
		function = "if (" + opts.Condition + ") { " + function + "; }"
	}
	if opts.Confirm != "" {
		function = "if (confirm(" + jsgen.Render(jsgen.Quoted(opts.Confirm)) + ")) { " + function + "; }"
	}

	return function, nil
}

// AjaxOptions returns the options object passed to the Ajax.Request/Ajax.Updater constructor.
func (c *Compiler) AjaxOptions(opts Options) (jsgen.Object, error) {
	var object jsgen.Object

	for event, code := range opts.Callbacks {
		name, err := event.CallbackName()
		if err != nil {
			return nil, err
		}
		object = append(object, jsgen.Property{
			Key:   name,
			Value: jsgen.CompactFunc{Params: []string{"request"}, Body: jsgen.Raw(code)},
		})
	}

	object = append(object, jsgen.Property{Key: "asynchronous", Value: jsgen.Bool(!opts.Synchronous)})

	if opts.Method != "" {
		object = append(object, jsgen.Property{Key: "method", Value: methodExpr(opts.Method)})
	}

	if opts.Position != "" {
		position, err := opts.Position.normalize()
		if err != nil {
			return nil, err
		}
		object = append(object, jsgen.Property{Key: "insertion", Value: jsgen.Quoted(position)})
	}

	evalScripts := opts.EvalScripts == nil || *opts.EvalScripts
	object = append(object, jsgen.Property{Key: "evalScripts", Value: jsgen.Bool(evalScripts)})

	var parameters string
	switch {
	case opts.Form:
		parameters = FORM_SERIALIZE_THIS
	case opts.Submit != "":
		parameters = "Form.serialize(" + jsgen.Render(jsgen.Quoted(opts.Submit)) + ")"
	case opts.With != "":
		parameters = opts.With
	}

	if c.forgeryProtection != nil && !opts.Form {
		if parameters != "" {
			parameters += " + '&"
		} else {
			parameters = "'"
		}
		parameters += c.forgeryProtection.TokenName + "=' + encodeURIComponent(" + jsgen.Render(jsgen.Quoted(c.forgeryProtection.Token)) + ")"
	}

	if parameters != "" {
		object = append(object, jsgen.Property{Key: "parameters", Value: jsgen.Raw(parameters)})
	}

	return object, nil
}

// methodExpr quotes the HTTP method unless it is already a JavaScript string expression.
func methodExpr(method string) jsgen.Expr {
	if strings.ContainsRune(method, '\'') {
		return jsgen.Raw(method)
	}
	return jsgen.Quoted(method)
}
