package keyring

import (
	"errors"
	"testing"
)

func TestSelectKind(t *testing.T) {
	tests := []struct {
		goos string
		want Kind
	}{
		{"darwin", KindKeychain},
		{"ios", KindKeychain},
		{"windows", KindWinCred},
		{"linux", KindSecretService},
		{"freebsd", KindSecretService},
		{"openbsd", KindSecretService},
		{"netbsd", KindSecretService},
		{"android", KindKeystore},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := SelectKind(tt.goos)
			if err != nil {
				t.Fatalf("SelectKind(%q) error: %v", tt.goos, err)
			}
			if got != tt.want {
				t.Errorf("SelectKind(%q) = %s, want %s", tt.goos, got, tt.want)
			}
		})
	}
}

func TestSelectKind_Unsupported(t *testing.T) {
	for _, goos := range []string{"plan9", "js", "wasip1", ""} {
		if _, err := SelectKind(goos); !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("SelectKind(%q) = %v, want ErrUnsupportedPlatform", goos, err)
		}
	}
}

func TestPlatformFactory_Unsupported(t *testing.T) {
	b := NewBootstrap(PlatformFactory("plan9", KeystoreOptions{}))

	_, err := b.EnsureInitialized()
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("EnsureInitialized = %v, want ErrStoreUnavailable", err)
	}
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("EnsureInitialized = %v, want wrapped ErrUnsupportedPlatform", err)
	}
}
