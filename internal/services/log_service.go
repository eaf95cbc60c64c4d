package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mscategory/internal/config"

	"github.com/sirupsen/logrus"
)

type LogService struct {
	Log *logrus.Logger
}

// NewLogService builds the logger from configuration. The returned cleanup
// closes the log file when output is "file".
func NewLogService(configuration *config.Configuration) (LogService, func(), error) {
	log := logrus.New()
	closer, err := setLogOutputType(configuration, log)
	if err != nil {
		return LogService{}, nil, err
	}
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	cleanup := func() {
		if closer == nil {
			return
		}
		log.SetOutput(io.Discard)
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "could not close log file: %v\n", err)
		}
	}
	return LogService{
		Log: log,
	}, cleanup, nil
}

// NewDiscardLogService is a LogService that writes nowhere.
func NewDiscardLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Server.LogConfig.Level))
	if err != nil {
		log.WithField("level", configuration.Server.LogConfig.Level).Warn("unknown log level, keeping info")
		return
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) (io.Closer, error) {
	switch configuration.Server.LogConfig.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		if configuration.Server.LogConfig.LogPath == "" {
			return nil, fmt.Errorf("file output requires log path to be set")
		}
		logFolder := strings.TrimRight(configuration.Server.LogConfig.LogPath, "/")
		logName := fmt.Sprintf("%s-%s.log", "mscategory", time.Now().Format("2006-01-02"))
		file, err := os.OpenFile(filepath.Join(logFolder, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		log.SetOutput(file)
		return file, nil
	}
	return nil, nil
}
