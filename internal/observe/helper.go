package observe

import (
	"regexp"

	"github.com/inoxlang/protohelpers/internal/logs"
	"github.com/inoxlang/protohelpers/internal/markup"
	"github.com/inoxlang/protohelpers/internal/remotecall"
	"github.com/rs/zerolog"
)

const (
	FIELD_TIMED_OBSERVER_CONSTRUCTOR = "Form.Element.Observer"
	FIELD_EVENT_OBSERVER_CONSTRUCTOR = "Form.Element.EventObserver"
	FORM_TIMED_OBSERVER_CONSTRUCTOR  = "Form.Observer"
	FORM_EVENT_OBSERVER_CONSTRUCTOR  = "Form.EventObserver"
	PERIODICAL_EXECUTER_CONSTRUCTOR  = "PeriodicalExecuter"

	DEFAULT_PERIODICAL_FREQUENCY = 10.0

	//name of the variable holding the observed value in callbacks.
	VALUE_VAR_NAME = "value"

	LOG_SRC = "observe"
)

var (
	OBSERVER_CALLBACK_PARAMS = []string{"element", VALUE_VAR_NAME}

	//A With option matching this pattern is an expression, otherwise it is a parameter name.
	WITH_EXPRESSION_PATTERN = regexp.MustCompile(`[{=(.]`)
)

type HelperConfig struct {
	Compiler *remotecall.Compiler //a compiler without URL builder nor forgery protection if nil

	//Frequency used by PeriodicallyCallRemote when the options have none, defaults to 10 seconds.
	DefaultPeriodicalFrequency *float64

	//Parse the generated JavaScript and return an error if it is invalid.
	ValidateOutput bool

	//Minify the generated JavaScript.
	CompactOutput bool

	Script markup.ScriptOptions

	Logger zerolog.Logger //a zero logger is disabled
}

// A Helper generates inline scripts observing fields and forms and periodically calling remote
// URLs. It is immutable and safe for concurrent use.
type Helper struct {
	compiler                   *remotecall.Compiler
	defaultPeriodicalFrequency float64
	validateOutput             bool
	compactOutput              bool
	script                     markup.ScriptOptions
	logger                     zerolog.Logger
}

func NewHelper(config HelperConfig) *Helper {
	helper := &Helper{
		compiler:                   config.Compiler,
		defaultPeriodicalFrequency: DEFAULT_PERIODICAL_FREQUENCY,
		validateOutput:             config.ValidateOutput,
		compactOutput:              config.CompactOutput,
		script:                     config.Script,
	}

	if helper.compiler == nil {
		helper.compiler = remotecall.NewCompiler(nil, nil)
	}

	if config.DefaultPeriodicalFrequency != nil {
		helper.defaultPeriodicalFrequency = *config.DefaultPeriodicalFrequency
	}

	helper.logger = logs.ChildLoggerForSource(config.Logger, LOG_SRC)

	return helper
}
