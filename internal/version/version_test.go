package version

import "testing"

func TestCompatible(t *testing.T) {
	tests := []struct {
		name           string
		client, server string
		want           bool
	}{
		{"same version", "1.2.0", "1.2.0", true},
		{"minor skew", "v1.2.0", "1.5.3", true},
		{"major skew", "1.2.0", "2.0.0", false},
		{"dev client", "dev", "3.0.0", true},
		{"dev server", "1.0.0", "dev", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compatible(tt.client, tt.server)
			if err != nil {
				t.Fatalf("Compatible error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tt.client, tt.server, got, tt.want)
			}
		})
	}
}

func TestCompatibleInvalid(t *testing.T) {
	if _, err := Compatible("not-a-version", "1.0.0"); err == nil {
		t.Error("expected error for invalid client version")
	}
	if _, err := Compatible("1.0.0", "banana"); err == nil {
		t.Error("expected error for invalid server version")
	}
}
