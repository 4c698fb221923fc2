package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/posener/complete/v2/install"
	"github.com/rs/zerolog"

	"github.com/inoxlang/protohelpers/internal/config"
	"github.com/inoxlang/protohelpers/internal/logs"
	"github.com/inoxlang/protohelpers/internal/markup"
	"github.com/inoxlang/protohelpers/internal/observe"
	"github.com/inoxlang/protohelpers/internal/remotecall"
	"github.com/inoxlang/protohelpers/internal/urlfor"
	"github.com/inoxlang/protohelpers/internal/utils"
)

const (
	ERROR_STATUS_CODE = 1
	COMMAND_NAME      = "protohelpers"
)

func main() {
	//handle completions
	cmd.Complete(COMMAND_NAME)

	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) == 1 { //no subcommand specified
		fmt.Fprint(errW, CMD_HELP)
		return ERROR_STATUS_CODE
	}

	mainSubCommand := args[1]
	mainSubCommandArgs := args[2:]

	//if the command has the shape help <subcommand> ... we modify the arguments to ask the subcommand to print its help message.
	if mainSubCommand == HELP_SUBCMD && len(mainSubCommandArgs) > 0 && mainSubCommandArgs[0] != "" && unicode.IsLetter(rune(mainSubCommandArgs[0][0])) {
		mainSubCommand = mainSubCommandArgs[0]
		mainSubCommandArgs = []string{"-h"}
	}

	if slices.Contains(HELP_SUBCMD_EQUIVALENTS, mainSubCommand) {
		mainSubCommand = HELP_SUBCMD
	}

	//unknown command
	if !slices.Contains(SUBCOMMANDS, mainSubCommand) {
		fmt.Fprintf(errW, "unknown command '%s'", mainSubCommand)

		closest, _, ok := utils.FindClosestString(context.Background(), SUBCOMMANDS, mainSubCommand, 2)
		if ok {
			fmt.Fprintf(errW, ", did you mean '%s' ?\n", closest)
		} else {
			fmt.Fprint(errW, "\n"+CMD_HELP)
		}
		return ERROR_STATUS_CODE
	}

	switch mainSubCommand {
	case HELP_SUBCMD:
		fmt.Fprint(outW, CMD_HELP)
		return
	case INSTALL_COMPLETIONS_SUBCMD:
		err := install.Install(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "installed")
		return
	case UNINSTALL_COMPLETIONS_SUBCMD:
		err := install.Uninstall(COMMAND_NAME)
		if err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		fmt.Fprintln(outW, "uninstalled")
		return
	case CHECK_SUBCMD:
		return CheckFiles(mainSubCommand, mainSubCommandArgs, outW, errW)
	case CONFIG_SUBCMD:
		return PrintConfig(mainSubCommand, mainSubCommandArgs, outW, errW)
	default:
		return RenderHelper(mainSubCommand, mainSubCommandArgs, outW, errW)
	}
}

type commonOptions struct {
	configPath string
	logLevel   string
}

func (o *commonOptions) register(flags *flag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "path of the YAML configuration file, by default the file "+config.CONFIG_FILE_RELPATH+" is searched in the XDG config directories")
	flags.StringVar(&o.logLevel, "log-level", "", "minimum level of logs (trace, debug, info, warn, error, disabled), overrides the configuration")
}

// load loads the configuration and creates the logger.
func (o *commonOptions) load(errW io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, zerolog.Logger{}, err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	level, err := logs.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, zerolog.Logger{}, err
	}

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = errW
		w.NoColor = config.NO_COLOR && !config.FORCE_COLOR
		w.TimeFormat = "15:04:05"
	})).Level(level).With().Timestamp().Logger()

	return cfg, logs.ChildLoggerForSource(logger, COMMAND_NAME), nil
}

func newHelper(cfg config.Config, logger zerolog.Logger) *observe.Helper {
	compiler := remotecall.NewCompiler(urlfor.Builder{Host: cfg.Host}, cfg.ForgeryProtection)

	return observe.NewHelper(observe.HelperConfig{
		Compiler:                   compiler,
		DefaultPeriodicalFrequency: &cfg.DefaultPeriodicalFrequency,
		ValidateOutput:             cfg.ValidateOutput,
		CompactOutput:              cfg.CompactOutput,
		Script:                     markup.ScriptOptions{Nonce: cfg.ScriptNonce},
		Logger:                     logger,
	})
}

func PrintConfig(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var common commonOptions
	common.register(flags)

	if showHelp(flags, mainSubCommandArgs, outW) {
		return
	}

	if err := flags.Parse(mainSubCommandArgs); err != nil {
		return ERROR_STATUS_CODE
	}

	cfg, _, err := common.load(errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	if common.configPath == "" {
		fmt.Fprintf(outW, "# default file: %s\n", config.DefaultConfigFilePath())
	}
	outW.Write(data)
	return
}

var errMissingPositionalArg = errors.New("missing positional argument")
