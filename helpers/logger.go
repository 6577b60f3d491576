package helpers

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
)

type EngineLogger struct {
}

var defaultLogger *log.Logger
var Logger = *NewEngineLogger()

func NewEngineLogger() *EngineLogger {
	return &EngineLogger{}
}

func init() {
	out := os.Stderr
	logFile := os.Getenv("logFile")
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening file: %v", err)
		}
		out = f
	}

	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN", "INFO ", "DEBUG", "TRACE"}
	defaultLogger = log.New()
	defaultLogger.SetOutput(out)
	defaultLogger.SetFormatter(plainFormatter)

	level := log.InfoLevel
	if env := os.Getenv("logLevel"); env != "" {
		if parsed, err := log.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	defaultLogger.SetLevel(level)
}

func (l *EngineLogger) Errorln(args ...interface{}) {
	defaultLogger.Errorln(args...)
}

func (l *EngineLogger) Fatalln(args ...interface{}) {
	defaultLogger.Fatalln(args...)
}

func (l *EngineLogger) Warnln(args ...interface{}) {
	defaultLogger.Warnln(args...)
}

func (l *EngineLogger) Infoln(args ...interface{}) {
	defaultLogger.Infoln(args...)
}

func (l *EngineLogger) Debugln(args ...interface{}) {
	defaultLogger.Debugln(args...)
}

func (l *EngineLogger) Traceln(args ...interface{}) {
	defaultLogger.Traceln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", f.LevelDesc[entry.Level], timestamp, entry.Message)), nil
}
