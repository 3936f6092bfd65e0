package crypto

import (
	"strings"
	"testing"
)

func TestSHA256_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string // empty means only shape is checked
	}{
		// Known vector: sha256("1234")
		{name: "known digest", password: "1234", want: "03ac674216f3e15c761ee1a5e255f067953623c8b388b4459e13f978d7c846f4"},
		{name: "empty password", password: ""},
		{name: "long password", password: strings.Repeat("a", 128)},
		{name: "unicode", password: "パスワード🔐"},
		{name: "special chars", password: "p@ssw0rd!#$%"},
		{name: "null byte", password: "pass\x00word"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			s := NewSHA256()

			// Act
			digest, err := s.Hash(test.password)

			// Assert
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if len(digest) != 64 {
				t.Errorf("Hash() length = %d, want 64", len(digest))
			}
			if digest != strings.ToLower(digest) {
				t.Error("Hash() should be lowercase hex")
			}
			if test.want != "" && digest != test.want {
				t.Errorf("Hash() = %q, want %q", digest, test.want)
			}
		})
	}
}

// The digest must be deterministic: equal inputs always produce equal
// outputs, across hasher instances.
func TestSHA256_Hash_Deterministic(t *testing.T) {
	// Arrange
	first := NewSHA256()
	second := NewSHA256()

	// Act
	digest1, err1 := first.Hash("samePassword")
	digest2, err2 := second.Hash("samePassword")

	// Assert
	if err1 != nil || err2 != nil {
		t.Fatalf("Hash() errors = %v, %v", err1, err2)
	}
	if digest1 != digest2 {
		t.Errorf("Hash() not deterministic: %q != %q", digest1, digest2)
	}
}

func TestSHA256_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		want     bool
	}{
		{name: "correct password", password: "1234", attempt: "1234", want: true},
		{name: "wrong password", password: "1234", attempt: "wrong", want: false},
		{name: "empty attempt", password: "1234", attempt: "", want: false},
		{name: "empty password matches empty attempt", password: "", attempt: "", want: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			s := NewSHA256()
			digest, err := s.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			valid, err := s.Verify(test.attempt, digest)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if valid != test.want {
				t.Errorf("Verify() = %v, want %v", valid, test.want)
			}
		})
	}
}
