// The extglobd command serves pattern matching over HTTP.
//
//	$ extglobd -port 44780 &
//	$ curl -s localhost:44780/match -d '{"pattern":"*.+(js|ts)","candidates":["a.js","b.go"]}'
//	{"pattern":"*.+(js|ts)","matches":["a.js"],"results":[true,false]}
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/DrJosh9000/extglob"
	"github.com/DrJosh9000/extglob/internal/server"
)

const (
	portEnv      = "EXTGLOBD_PORT"
	cacheSizeEnv = "EXTGLOBD_CACHE_SIZE"
)

func main() {
	port := 44780
	cacheSize := 4096

	// Environment first, then flags override.
	if v := os.Getenv(portEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't parse %s=%q: %v\n", portEnv, v, err)
			os.Exit(1)
		}
		port = n
	}
	if v := os.Getenv(cacheSizeEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't parse %s=%q: %v\n", cacheSizeEnv, v, err)
			os.Exit(1)
		}
		cacheSize = n
	}
	flag.IntVar(&port, "port", port, "Server listening port")
	flag.IntVar(&cacheSize, "cache-size", cacheSize, "Maximum number of cached patterns (0 = unbounded)")
	verbose := flag.Bool("verbose", false, "Log at debug level")
	flag.Parse()

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	if *verbose {
		cfg.Level.SetLevel(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	srv := server.New(extglob.NewCache(cacheSize), logger)
	addr := fmt.Sprintf(":%d", port)
	logger.Info("extglobd listening", zap.String("addr", addr), zap.Int("cache_size", cacheSize))
	if err := srv.NewRouter().Run(addr); err != nil {
		logger.Fatal("failed to start extglobd", zap.Error(err))
	}
}
