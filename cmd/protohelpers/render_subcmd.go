package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/inoxlang/protohelpers/internal/markup"
	"github.com/inoxlang/protohelpers/internal/observe"
	"github.com/inoxlang/protohelpers/internal/remotecall"
)

// remoteCallFlags are the flags describing a remote call, they override the options read from the
// -options file.
type remoteCallFlags struct {
	optionsFile string
	url         string
	controller  string
	action      string
	update      string
	with        string
	position    string
	method      string
	synchronous bool
}

func (f *remoteCallFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&f.optionsFile, "options", "", "YAML file containing the remote call options")
	flags.StringVar(&f.url, "url", "", "URL of the remote call, used as is")
	flags.StringVar(&f.controller, "controller", "", "controller of the routed URL")
	flags.StringVar(&f.action, "action", "", "action of the routed URL")
	flags.StringVar(&f.update, "update", "", "id of the element updated with the response")
	flags.StringVar(&f.with, "with", "", "JavaScript expression of the parameters, or the name of the parameter holding the observed value")
	flags.StringVar(&f.position, "position", "", "insertion position of the response: top, bottom, before or after")
	flags.StringVar(&f.method, "method", "", "HTTP method")
	flags.BoolVar(&f.synchronous, "synchronous", false, "perform a synchronous request")
}

func (f *remoteCallFlags) options() (remotecall.Options, error) {
	var opts remotecall.Options

	if f.optionsFile != "" {
		data, err := os.ReadFile(f.optionsFile)
		if err != nil {
			return remotecall.Options{}, err
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return remotecall.Options{}, fmt.Errorf("invalid options file: %w", err)
		}
	}

	if f.url != "" {
		opts.URL.Raw = f.url
	}
	if f.controller != "" {
		opts.URL.Controller = f.controller
	}
	if f.action != "" {
		opts.URL.Action = f.action
	}
	if f.update != "" {
		opts.Update = remotecall.Update{Target: f.update}
	}
	if f.with != "" {
		opts.With = f.with
	}
	if f.position != "" {
		opts.Position = remotecall.Position(f.position)
	}
	if f.method != "" {
		opts.Method = f.method
	}
	if f.synchronous {
		opts.Synchronous = true
	}

	return opts, nil
}

// RenderHelper implements the observe-field, observe-form, periodically-call-remote and link-to-remote
// subcommands: the generated markup is written to outW.
func RenderHelper(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	flags := flag.NewFlagSet(mainSubCommand, flag.ContinueOnError)
	flags.SetOutput(errW)

	var (
		common    commonOptions
		remote    remoteCallFlags
		frequency *float64
		function  string
		class     string
		href      string
	)

	common.register(flags)
	remote.register(flags)

	switch mainSubCommand {
	case OBSERVE_FIELD_SUBCMD, OBSERVE_FORM_SUBCMD, PERIODICALLY_CALL_REMOTE_SUBCMD:
		flags.Func("frequency", "frequency in seconds", func(s string) error {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			frequency = &f
			return nil
		})
	}

	switch mainSubCommand {
	case OBSERVE_FIELD_SUBCMD, OBSERVE_FORM_SUBCMD:
		flags.StringVar(&function, "function", "", "JavaScript code called instead of performing a remote call")
	case LINK_TO_REMOTE_SUBCMD:
		flags.StringVar(&class, "class", "", "class of the link")
		flags.StringVar(&href, "href", "", "href of the link, defaults to #")
	}

	if showHelp(flags, mainSubCommandArgs, outW) {
		return
	}

	if err := flags.Parse(mainSubCommandArgs); err != nil {
		return ERROR_STATUS_CODE
	}

	var positionalArg string
	switch mainSubCommand {
	case OBSERVE_FIELD_SUBCMD, OBSERVE_FORM_SUBCMD, LINK_TO_REMOTE_SUBCMD:
		if flags.NArg() == 0 {
			fmt.Fprintf(errW, "%s: %s\n", errMissingPositionalArg, SUBCOMMAND_DESCRIPTION_MAP[mainSubCommand])
			return ERROR_STATUS_CODE
		}
		positionalArg = strings.Join(flags.Args(), " ")
	}

	cfg, logger, err := common.load(errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	remoteOpts, err := remote.options()
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	helper := newHelper(cfg, logger)

	var result string

	switch mainSubCommand {
	case OBSERVE_FIELD_SUBCMD, OBSERVE_FORM_SUBCMD:
		opts := observe.ObserveOptions{
			Frequency: frequency,
			Callback:  observe.Remote(remoteOpts),
		}
		if function != "" {
			opts.Callback = observe.Function(function)
		}

		if mainSubCommand == OBSERVE_FIELD_SUBCMD {
			result, err = helper.ObserveField(positionalArg, opts)
		} else {
			result, err = helper.ObserveForm(positionalArg, opts)
		}
	case PERIODICALLY_CALL_REMOTE_SUBCMD:
		result, err = helper.PeriodicallyCallRemote(observe.PeriodicalOptions{
			Frequency: frequency,
			Remote:    remoteOpts,
		})
	case LINK_TO_REMOTE_SUBCMD:
		result, err = helper.LinkToRemote(positionalArg, remoteOpts, markup.LinkOptions{Class: class, Href: href})
	default:
		panic(fmt.Errorf("unexpected subcommand %s", mainSubCommand))
	}

	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	fmt.Fprintln(outW, result)
	return
}
