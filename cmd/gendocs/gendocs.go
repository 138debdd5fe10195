// gendocs bundles every markdown document in ./Docs into a single self-contained page, ./Docs/Documentación.html,
// that can be browsed offline: navigation, search, and rendering all happen in the browser.
//
//	usage:
//	   gendocs
//
// It takes no arguments and nothing in the environment changes what it generates.
// GENDOCS_LOG_LEVEL (debug, info, warn, error; default info) only changes how much it says on standard error.
package main

import (
	"fmt"
	"os"
	"time"

	"gitlab.com/efronlicht/docbundle/bundle"
	"gitlab.com/efronlicht/docbundle/observability/meta"
	"gitlab.com/efronlicht/enve"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	start := time.Now()
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, _ := setupLogger(zapcore.Lock(os.Stderr), level)
	level.SetLevel(logLevel())

	dst, err := run(start)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Debug("done", zap.Duration("elapsed", time.Since(start)))
	_ = logger.Sync()
	fmt.Printf("Documentación generada en: %s\n", dst)
}

func run(start time.Time) (string, error) {
	build := meta.New(start)
	zap.L().Debug("metadata dump", zap.Reflect("meta", build))
	return bundle.Generate(bundle.Config{
		Dir:       bundle.DefaultDir,
		Output:    bundle.DefaultOutput,
		Prerender: true,
		Now:       func() time.Time { return start },
		BuildID:   build.ID,
	})
}

func logLevel() zapcore.Level {
	return enve.FromTextOr[zapcore.Level]("GENDOCS_LOG_LEVEL", zapcore.InfoLevel)
}

// we log to standard error: standard output is reserved for the path of the generated page.
// the standard library's logger (and so enve's chatter about missing variables) only shows up at debug level.
// undo restores the previous global loggers.
func setupLogger(w zapcore.WriteSyncer, level zap.AtomicLevel) (logger *zap.Logger, undo func()) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	logger = zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, level))
	undoGlobals := zap.ReplaceGlobals(logger)
	undoStdLog, err := zap.RedirectStdLogAt(logger, zapcore.DebugLevel)
	if err != nil { // only for levels zap doesn't know, and debug isn't one of them.
		undoStdLog = zap.RedirectStdLog(logger)
	}
	return logger, func() { undoStdLog(); undoGlobals() }
}
