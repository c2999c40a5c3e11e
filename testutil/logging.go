// Package testutil configures shared test behaviour. Importing it silences
// logrus unless tests run verbosely or ABSACC_TEST_LOG_LEVEL is set.
package testutil

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevelEnv overrides the log level used in tests.
const LogLevelEnv = "ABSACC_TEST_LOG_LEVEL"

func init() {
	logrus.SetLevel(logrus.TraceLevel)

	if raw, ok := os.LookupEnv(LogLevelEnv); ok {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			logrus.WithError(err).Warnf("invalid %s", LogLevelEnv)
			return
		}
		logrus.SetLevel(level)
		return
	}

	if !isVerbose(os.Args) {
		logrus.StandardLogger().Out = io.Discard
	}
}

func isVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "-test.v" || strings.HasPrefix(arg, "-test.v=") && arg != "-test.v=false" {
			return true
		}
	}

	return false
}
