package password

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "pw123",
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			wantErr:  false,
		},
		{
			name:     "unicode password",
			password: "пароль-путешественника",
			wantErr:  false,
		},
		{
			name:     "longer than bcrypt limit",
			password: string(make([]byte, 80)),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetHash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("GetHash() returned empty hash")
			}

			if !tt.wantErr && !Verify(gotHash, tt.password) {
				t.Error("Generated hash doesn't verify with original password")
			}
		})
	}
}

func TestGetHash_SamePasswordDifferentHashes(t *testing.T) {
	hash1, err := GetHash("pw123")
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}
	hash2, err := GetHash("pw123")
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password produced identical hashes")
	}
	if !Verify(hash1, "pw123") || !Verify(hash2, "pw123") {
		t.Error("both salted hashes must verify")
	}
}

func TestGetHash_UsesConfiguredCost(t *testing.T) {
	hash, err := GetHash("pw123")
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost failed: %v", err)
	}
	if cost != Cost {
		t.Errorf("cost = %d, want %d", cost, Cost)
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("correct_password")
	if err != nil {
		t.Fatalf("Failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		hash        string
		password    string
		shouldMatch bool
	}{
		{
			name:        "matching password",
			hash:        correctHash,
			password:    "correct_password",
			shouldMatch: true,
		},
		{
			name:        "wrong password",
			hash:        correctHash,
			password:    "wrong_password",
			shouldMatch: false,
		},
		{
			name:        "empty password",
			hash:        correctHash,
			password:    "",
			shouldMatch: false,
		},
		{
			name:        "malformed hash",
			hash:        "not-a-bcrypt-hash",
			password:    "correct_password",
			shouldMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)

			if tt.shouldMatch && err != nil {
				t.Errorf("CompareHash() should succeed, got error: %v", err)
			}
			if !tt.shouldMatch && err == nil {
				t.Error("CompareHash() should fail, but got no error")
			}
			if got := Verify(tt.hash, tt.password); got != tt.shouldMatch {
				t.Errorf("Verify() = %v, want %v", got, tt.shouldMatch)
			}
		})
	}
}

func TestCompareHash_MismatchWrapsBcryptError(t *testing.T) {
	hash, err := GetHash("pw123")
	if err != nil {
		t.Fatalf("GetHash failed: %v", err)
	}

	err = CompareHash(hash, "pw124")
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("expected ErrMismatchedHashAndPassword, got %v", err)
	}
}
