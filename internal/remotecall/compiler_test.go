package remotecall

import (
	"testing"

	"github.com/inoxlang/protohelpers/internal/urlfor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRemoteCall(t *testing.T) {
	compiler := NewCompiler(urlfor.Builder{Host: "http://www.example.com"}, nil)

	compile := func(t *testing.T, opts Options) string {
		code, err := compiler.CompileRemoteCall(opts)
		require.NoError(t, err)
		return code
	}

	t.Run("default options", func(t *testing.T) {
		assert.Equal(t,
			"new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true})",
			compile(t, Options{}),
		)
	})

	t.Run("update", func(t *testing.T) {
		code := compile(t, Options{
			URL:    urlfor.Options{Action: "mehr_bier"},
			Update: Update{Target: "schremser_bier"},
		})
		assert.Equal(t,
			"new Ajax.Updater('schremser_bier', 'http://www.example.com/mehr_bier', {asynchronous:true, evalScripts:true})",
			code,
		)
	})

	t.Run("success and failure targets", func(t *testing.T) {
		code := compile(t, Options{
			URL:    urlfor.Options{Raw: "/testing/invoice/16"},
			Update: Update{Success: "invoice", Failure: "error"},
		})
		assert.Equal(t,
			"new Ajax.Updater({success:'invoice',failure:'error'}, '/testing/invoice/16', {asynchronous:true, evalScripts:true})",
			code,
		)
	})

	t.Run("single and split targets", func(t *testing.T) {
		_, err := compiler.CompileRemoteCall(Options{Update: Update{Target: "a", Success: "b"}})
		assert.ErrorIs(t, err, ErrConflictingUpdateTarget)
	})

	t.Run("callbacks", func(t *testing.T) {
		cases := map[Event]string{
			OnComplete: "onComplete",
			OnSuccess:  "onSuccess",
			OnFailure:  "onFailure",
		}
		for event, name := range cases {
			code := compile(t, Options{
				URL:       urlfor.Options{Action: "whatnot"},
				Callbacks: map[Event]string{event: "alert(request.responseText)"},
			})
			assert.Equal(t,
				"new Ajax.Request('http://www.example.com/whatnot', {asynchronous:true, evalScripts:true, "+name+":function(request){alert(request.responseText)}})",
				code,
			)
		}
	})

	t.Run("status code callback", func(t *testing.T) {
		code := compile(t, Options{
			Callbacks: map[Event]string{
				StatusCodeEvent(404): "alert('not found')",
				OnLoading:            "show()",
			},
		})
		assert.Equal(t,
			"new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true, on404:function(request){alert('not found')}, onLoading:function(request){show()}})",
			code,
		)
	})

	t.Run("unknown callback event", func(t *testing.T) {
		for _, event := range []Event{"clicked", "99", "600", "0404"} {
			_, err := compiler.CompileRemoteCall(Options{Callbacks: map[Event]string{event: "x()"}})
			assert.ErrorIs(t, err, ErrUnknownCallbackEvent, string(event))
		}
	})

	t.Run("query parameters", func(t *testing.T) {
		code := compile(t, Options{
			URL:       urlfor.Options{Action: "whatnot", Params: map[string]string{"a": "10", "b": "20"}},
			Callbacks: map[Event]string{OnFailure: "alert(request.responseText)"},
		})
		assert.Equal(t,
			"new Ajax.Request('http://www.example.com/whatnot?a=10&b=20', {asynchronous:true, evalScripts:true, onFailure:function(request){alert(request.responseText)}})",
			code,
		)
	})

	t.Run("synchronous", func(t *testing.T) {
		code := compile(t, Options{URL: urlfor.Options{Action: "whatnot"}, Synchronous: true})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/whatnot', {asynchronous:false, evalScripts:true})", code)
	})

	t.Run("position", func(t *testing.T) {
		code := compile(t, Options{URL: urlfor.Options{Action: "whatnot"}, Position: "Bottom"})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/whatnot', {asynchronous:true, evalScripts:true, insertion:'bottom'})", code)
	})

	t.Run("invalid position", func(t *testing.T) {
		_, err := compiler.CompileRemoteCall(Options{Position: "middle"})
		assert.ErrorIs(t, err, ErrInvalidPosition)
	})

	t.Run("method", func(t *testing.T) {
		code := compile(t, Options{Method: "delete"})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true, method:'delete'})", code)

		code = compile(t, Options{Method: "'p' + 'ut'"})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true, method:'p' + 'ut'})", code)
	})

	t.Run("scripts are not evaluated", func(t *testing.T) {
		no := false
		code := compile(t, Options{EvalScripts: &no})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:false})", code)
	})

	t.Run("parameters precedence", func(t *testing.T) {
		code := compile(t, Options{Form: true, Submit: "other", With: "value"})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true, parameters:Form.serialize(this)})", code)

		code = compile(t, Options{Submit: "other", With: "value"})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true, parameters:Form.serialize('other')})", code)

		code = compile(t, Options{With: "value"})
		assert.Equal(t, "new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true, parameters:value})", code)
	})

	t.Run("quotes in the URL are escaped", func(t *testing.T) {
		code := compile(t, Options{URL: urlfor.Options{Raw: "whatnot's"}})
		assert.Equal(t, `new Ajax.Request('whatnot\'s', {asynchronous:true, evalScripts:true})`, code)
	})

	t.Run("before, after, condition and confirm", func(t *testing.T) {
		code := compile(t, Options{
			Before:    "show()",
			After:     "hide()",
			Condition: "ok",
			Confirm:   "Are you sure?",
		})
		assert.Equal(t,
			"if (confirm('Are you sure?')) { if (ok) { show(); new Ajax.Request('http://www.example.com/', {asynchronous:true, evalScripts:true}); hide(); }; }",
			code,
		)
	})

	t.Run("URL error", func(t *testing.T) {
		_, err := compiler.CompileRemoteCall(Options{URL: urlfor.Options{Raw: "x", Action: "y"}})
		assert.ErrorIs(t, err, urlfor.ErrConflictingURLOptions)
	})
}

func TestForgeryProtection(t *testing.T) {
	compiler := NewCompiler(urlfor.Builder{}, &ForgeryProtection{TokenName: "authenticity_token", Token: "abc'd"})

	t.Run("no other parameters", func(t *testing.T) {
		code, err := compiler.CompileRemoteCall(Options{})
		require.NoError(t, err)
		assert.Equal(t,
			`new Ajax.Request('/', {asynchronous:true, evalScripts:true, parameters:'authenticity_token=' + encodeURIComponent('abc\'d')})`,
			code,
		)
	})

	t.Run("with parameters", func(t *testing.T) {
		code, err := compiler.CompileRemoteCall(Options{With: "value"})
		require.NoError(t, err)
		assert.Equal(t,
			`new Ajax.Request('/', {asynchronous:true, evalScripts:true, parameters:value + '&authenticity_token=' + encodeURIComponent('abc\'d')})`,
			code,
		)
	})

	t.Run("serialized form", func(t *testing.T) {
		code, err := compiler.CompileRemoteCall(Options{Form: true})
		require.NoError(t, err)
		assert.Equal(t, `new Ajax.Request('/', {asynchronous:true, evalScripts:true, parameters:Form.serialize(this)})`, code)
	})
}
