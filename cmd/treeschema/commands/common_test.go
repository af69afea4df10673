package commands

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("json format", func(t *testing.T) {
		if err := OutputStructured(data, FormatJSON); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("yaml format", func(t *testing.T) {
		if err := OutputStructured(data, FormatYAML); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})
}

func TestFormatDocPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"stdin marker", StdinFilePath, "<stdin>"},
		{"regular path", "order.json", "order.json"},
		{"absolute path", "/tmp/config.yaml", "/tmp/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDocPath(tt.path); got != tt.expected {
				t.Errorf("FormatDocPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
