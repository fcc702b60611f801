package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFolderScan,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpFolderScan,
			err:      errors.New("permission denied"),
			expected: "Failed to scan folder: permission denied",
		},
		{
			name:     "tag update operation",
			op:       OpTagUpdate,
			err:      errors.New("file is read-only"),
			expected: "Failed to update file metadata: file is read-only",
		},
		{
			name:     "initialize operation",
			op:       OpInitialize,
			err:      errors.New("database locked"),
			expected: "Failed to initialize application: database locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpTagUpdate,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpTagUpdate,
			context:  "song.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to update file metadata 'song.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpTagUpdate,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to update file metadata: permission denied",
		},
		{
			name:     "folder scan with path context",
			op:       OpFolderScan,
			context:  "/home/user/music",
			err:      errors.New("directory not found"),
			expected: "Failed to scan folder '/home/user/music': directory not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpFolderScan,
		OpTagRead, OpTagUpdate,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
