package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "create-strange-lil-scaffold"},
		{"home dir", HomeDir(), ".strange-lil-scaffold"},
		{"default owner", DefaultOwner(), "thegreatbey"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
