package tui

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gossh "golang.org/x/crypto/ssh"
)

func TestHostKeyFingerprint(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	block, err := gossh.MarshalPrivateKey(priv, "")
	if err != nil {
		t.Fatalf("MarshalPrivateKey() failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := HostKeyFingerprint(path)
	if err != nil {
		t.Fatalf("HostKeyFingerprint() failed: %v", err)
	}
	sshPub, err := gossh.NewPublicKey(pub)
	if err != nil {
		t.Fatal(err)
	}
	if want := gossh.FingerprintSHA256(sshPub); got != want {
		t.Errorf("fingerprint = %q, want %q", got, want)
	}
	if !strings.HasPrefix(got, "SHA256:") {
		t.Errorf("fingerprint %q lacks SHA256: prefix", got)
	}
}

func TestHostKeyFingerprintErrors(t *testing.T) {
	if _, err := HostKeyFingerprint(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing key")
	}

	path := filepath.Join(t.TempDir(), "garbage")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := HostKeyFingerprint(path); err == nil {
		t.Error("expected error for invalid key")
	}
}

func TestResolveHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")
	got, err := resolveHostKey(path)
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	t.Setenv("HOME", t.TempDir())
	def, err := resolveHostKey("")
	if err != nil {
		t.Fatalf("resolveHostKey(\"\") failed: %v", err)
	}
	if filepath.Base(def) != "host_key" || filepath.Base(filepath.Dir(def)) != ".arcade" {
		t.Errorf("default path = %q, want ~/.arcade/host_key", def)
	}
}
