package blitz

import (
	"fmt"
	"io"
	"os"

	"github.com/ciss-tools/scenediagram/internal/config"
	"github.com/ciss-tools/scenediagram/internal/logging"
)

// OpenWithConfig loads scene_reader.cfg.json from configDir and opens path
// with the configured default layer, size cap and logger. Logs go to
// stderr and, when logFile is set, are appended to that file as well; the
// file stays open until Reader.Close.
func OpenWithConfig(path, configDir string) (*Reader, error) {
	if err := config.Load(configDir); err != nil {
		return nil, err
	}
	rc, err := config.Reader()
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{os.Stderr}
	var logFile *os.File
	if name := config.GetString("logFile"); name != "" {
		logFile, err = os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, logFile)
	}

	logger := logging.New(config.GetString("logLevel"), config.GetString("logFormat"), writers...)

	r, err := Open(path,
		WithLogger(logger.With("file", path)),
		WithDefaultLayer(rc.DefaultLayer),
		WithMaxFileSize(rc.MaxFileSize),
	)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}
	if logFile != nil {
		r.logSink = logFile
	}
	return r, nil
}
