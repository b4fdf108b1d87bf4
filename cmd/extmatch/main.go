// The extmatch command prints the lines of standard input that match a
// pattern.
//
// Example:
//
//	$ git ls-files | extmatch '**/*_test.go'
//	braces/braces_test.go
//	cache_test.go
//	match_test.go
//	parser_test.go
//	tokeniser_test.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/DrJosh9000/extglob"
)

var (
	ignoreCase = flag.Bool("i", false, "Match case-insensitively")
	dot        = flag.Bool("dot", false, "Allow wildcards to match a leading dot")
	unixify    = flag.Bool("unixify", false, "Treat backslashes as path separators")
	noGlobStar = flag.Bool("noglobstar", false, "Treat ** like *")
	invert     = flag.Bool("v", false, "Print lines that don't match")
	workers    = flag.Int("j", 0, "Worker goroutine limit (0 = one per chunk)")
	debug      = flag.Bool("debug", false, "Log debugging information to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] pattern\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if *debug {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	pattern := flag.Arg(0)
	p := extglob.Parse(pattern,
		extglob.CaseSensitive(!*ignoreCase),
		extglob.MatchLeadingDot(*dot),
		extglob.Unixify(*unixify),
		extglob.EnableGlobStar(!*noGlobStar),
	)

	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		logger.Fatal("Couldn't read standard input", zap.Error(err))
	}
	logger.Debug("read candidates", zap.String("pattern", pattern), zap.Int("count", len(lines)))

	opts := []extglob.FilterOption{extglob.GoroutineLimit(*workers)}
	if *debug {
		opts = append(opts, extglob.WithTraceLogs(os.Stderr))
	}
	matches, err := p.Filter(context.Background(), lines, opts...)
	if err != nil {
		logger.Fatal("Couldn't filter candidates", zap.Error(err))
	}
	logger.Debug("filtered candidates", zap.Int("matches", len(matches)))

	if !*invert {
		for _, m := range matches {
			fmt.Println(m)
		}
		return
	}
	for _, l := range unmatched(lines, matches) {
		fmt.Println(l)
	}
}

// unmatched returns the lines not in matches. matches is a subsequence of
// lines in the same order, as Filter returns it, and equal lines match alike.
func unmatched(lines, matches []string) []string {
	var out []string
	k := 0
	for _, l := range lines {
		if k < len(matches) && matches[k] == l {
			k++
			continue
		}
		out = append(out, l)
	}
	return out
}
