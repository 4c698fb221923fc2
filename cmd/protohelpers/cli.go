package main

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const (
	OBSERVE_FIELD_SUBCMD            = "observe-field"
	OBSERVE_FORM_SUBCMD             = "observe-form"
	PERIODICALLY_CALL_REMOTE_SUBCMD = "periodically-call-remote"
	LINK_TO_REMOTE_SUBCMD           = "link-to-remote"
	CHECK_SUBCMD                    = "check"
	CONFIG_SUBCMD                   = "config"
	INSTALL_COMPLETIONS_SUBCMD      = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD    = "uninstall-completions"
	HELP_SUBCMD                     = "help"
)

var (
	SUBCOMMANDS = []string{
		OBSERVE_FIELD_SUBCMD, OBSERVE_FORM_SUBCMD, PERIODICALLY_CALL_REMOTE_SUBCMD, LINK_TO_REMOTE_SUBCMD,
		CHECK_SUBCMD, CONFIG_SUBCMD, INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{OBSERVE_FIELD_SUBCMD, "print a script observing a form field: observe-field [options] <field id>"},
		{OBSERVE_FORM_SUBCMD, "print a script observing a form: observe-form [options] <form id>"},
		{PERIODICALLY_CALL_REMOTE_SUBCMD, "print a script periodically calling a remote URL"},
		{LINK_TO_REMOTE_SUBCMD, "print a link performing a remote call: link-to-remote [options] <name>"},
		{CHECK_SUBCMD, "check the syntax of the inline scripts of HTML files: check <file>..."},
		{CONFIG_SUBCMD, "print the effective configuration"},
		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by addding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	CMD_HELP = "commands:\n"

	commonFlags = map[string]complete.Predictor{
		"config":    predict.Files("*.yaml"),
		"log-level": predict.Set{"trace", "debug", "info", "warn", "error", "disabled"},
	}

	remoteFlags = map[string]complete.Predictor{
		"options":     predict.Files("*.yaml"),
		"url":         predict.Nothing,
		"controller":  predict.Nothing,
		"action":      predict.Nothing,
		"update":      predict.Nothing,
		"with":        predict.Nothing,
		"position":    predict.Set{"top", "bottom", "before", "after"},
		"method":      predict.Set{"get", "post", "put", "delete"},
		"synchronous": predict.Nothing,
	}

	cmd = &complete.Command{
		Sub: map[string]*complete.Command{
			OBSERVE_FIELD_SUBCMD: {
				Flags: mergePredictors(commonFlags, remoteFlags, map[string]complete.Predictor{
					"frequency": predict.Nothing,
					"function":  predict.Nothing,
				}),
			},
			OBSERVE_FORM_SUBCMD: {
				Flags: mergePredictors(commonFlags, remoteFlags, map[string]complete.Predictor{
					"frequency": predict.Nothing,
					"function":  predict.Nothing,
				}),
			},
			PERIODICALLY_CALL_REMOTE_SUBCMD: {
				Flags: mergePredictors(commonFlags, remoteFlags, map[string]complete.Predictor{
					"frequency": predict.Nothing,
				}),
			},
			LINK_TO_REMOTE_SUBCMD: {
				Flags: mergePredictors(commonFlags, remoteFlags, map[string]complete.Predictor{
					"class": predict.Nothing,
					"href":  predict.Nothing,
				}),
			},
			CHECK_SUBCMD: {
				Flags: commonFlags,
				Args:  predict.Files("*.html"),
			},
			CONFIG_SUBCMD:                {Flags: commonFlags},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD:                  {},
		},
	}
)

func init() {
	for _, entry := range SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	CMD_HELP += "\nType `" + COMMAND_NAME + " help <command>` to get command-specific help.\n"
}

func mergePredictors(maps ...map[string]complete.Predictor) map[string]complete.Predictor {
	merged := map[string]complete.Predictor{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}
