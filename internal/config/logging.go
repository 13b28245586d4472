package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger.
// Lambda output goes to CloudWatch, so JSON is used there and text locally.
func NewLogger(cfg *Config, serverless *ServerlessConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if serverless != nil && serverless.IsLambda {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	fields := logrus.Fields{"environment": cfg.Environment}
	if serverless != nil {
		fields["mode"] = serverless.DeploymentMode()
		if serverless.FunctionName != "" {
			fields["function"] = serverless.FunctionName
		}
	}
	logger.WithFields(fields).Debug("Logger initialized")

	return logger
}
