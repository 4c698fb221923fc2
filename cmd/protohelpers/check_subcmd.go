package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/inoxlang/protohelpers/internal/jsgen"
	"github.com/inoxlang/protohelpers/internal/markup"
)

// CheckFiles parses the inline scripts of the HTML files passed as arguments and reports syntax errors.
func CheckFiles(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
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

	if flags.NArg() == 0 {
		fmt.Fprintf(errW, "%s: %s\n", errMissingPositionalArg, SUBCOMMAND_DESCRIPTION_MAP[mainSubCommand])
		return ERROR_STATUS_CODE
	}

	_, logger, err := common.load(errW)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	invalidScripts := 0

	for _, path := range flags.Args() {
		scripts, err := checkFile(path)
		if err != nil {
			logger.Error().Err(err).Str("file", path).Msg("failed to read scripts")
			return ERROR_STATUS_CODE
		}

		logger.Debug().Str("file", path).Int("scripts", len(scripts)).Msg("scripts found")

		for _, script := range scripts {
			if err := jsgen.Check(script.Code); err != nil {
				invalidScripts++
				fmt.Fprintf(outW, "%s: script #%d%s: %s\n", path, script.Index, formatScriptId(script.Id), err)
			}
		}
	}

	if invalidScripts > 0 {
		return ERROR_STATUS_CODE
	}
	return
}

func checkFile(path string) ([]markup.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return markup.FindScripts(f)
}

func formatScriptId(id string) string {
	if id == "" {
		return ""
	}
	return " (#" + id + ")"
}
