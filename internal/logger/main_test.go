package logger_test

import (
	"testing"

	"github.com/barangay-is/barangay-is/internal/logger"
)

func TestInit(t *testing.T) {
	type testCase struct {
		name    string
		cfg     logger.Log
		wantErr bool
	}

	testCases := []testCase{
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
		},
		{
			name: "console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
		},
		{
			name: "trace level enables stack marshaling",
			cfg: logger.Log{
				LogLevel:    "trace",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
		},
		{
			name: "unsupported log level",
			cfg: logger.Log{
				LogLevel:    "verbose",
				ServiceName: "test",
				AppName:     "test",
			},
			wantErr: true,
		},
		{
			name: "missing service name",
			cfg: logger.Log{
				LogLevel: "info",
				AppName:  "test",
			},
			wantErr: true,
		},
		{
			name: "missing app name",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := logger.Init(tc.cfg)
			if tc.wantErr && err == nil {
				t.Error("Init() expected error, got nil")
			}

			if !tc.wantErr && err != nil {
				t.Errorf("Init() unexpected error: %v", err)
			}
		})
	}
}
