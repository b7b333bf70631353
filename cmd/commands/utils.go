package commands

import (
	"fmt"
	"os"

	"vitrine/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("vitrine error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`usage: vitrine <command> [arguments]

commands:
  run <config.yml>   start the admin backend
  version            print the version
  help               print this help`) //nolint
}
