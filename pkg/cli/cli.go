package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const EnvSuite = "MRXBENCH_SUITE"

// Command can be any of:
//
//	CommandThroughput
//	CommandQuality
type Command any

type CommandThroughput struct {
	SuiteDirPath string
}

type CommandQuality struct {
	Parallelism int
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "mrxbench"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("mrxbench", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" throughput - hashes generated key batches and reports rates",
			" quality - scans digest bit windows for collisions",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "throughput":
		c := CommandThroughput{}

		suiteDirPath := "./suite"
		if p := os.Getenv(EnvSuite); p != "" {
			suiteDirPath = p
		}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s throughput [-suite <path>]", executableName),
				"",
				"flags:",
				"-suite <path>: defines the suite directory path "+
					"(default: ./suite)",
				"",
				"environment variables:",
				fm("%s: default suite directory path", EnvSuite),
			)
		}

		flags.StringVar(&c.SuiteDirPath, "suite", suiteDirPath, "")
		if !parseFlags() {
			return nil
		}

		cmd = c

	case "quality":
		c := CommandQuality{}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s quality [-parallelism <n>]", executableName),
				"",
				"flags:",
				"-parallelism <n>: defines the number of scanning "+
					"goroutines (default: all CPUs)",
			)
		}

		flags.IntVar(&c.Parallelism, "parallelism", 0, "")
		if !parseFlags() {
			return nil
		}

		if c.Parallelism < 0 {
			writeLines(w,
				"-parallelism must not be negative.",
			)
			flags.Usage()
			return nil
		}

		cmd = c

	case "help":
		PrintHelp(w)
		return

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	writeLines(w,
		"usage: mrxbench <command> [flags]",
		"",
		"commands available:",
		" throughput - hashes generated key batches and reports rates",
		" quality - scans digest bit windows for collisions",
	)
}
