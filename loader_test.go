package feal4

import (
	"strings"
	"testing"
)

func TestLoadCorpusBasic(t *testing.T) {
	in := "Plaintext=0102030405060708\nCiphertext=b42ccc47b42ccc47\n"
	c, err := LoadCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	if c.PLeft(0) != 0x01020304 || c.PRight(0) != 0x05060708 {
		t.Fatalf("pair 0 plaintext = 0x%08x/0x%08x, want 0x01020304/0x05060708", c.PLeft(0), c.PRight(0))
	}
	if c.CLeft(0) != 0xb42ccc47 || c.CRight(0) != 0xb42ccc47 {
		t.Fatalf("pair 0 ciphertext = 0x%08x/0x%08x, want 0xb42ccc47/0xb42ccc47", c.CLeft(0), c.CRight(0))
	}
}

func TestLoadCorpusMultipleRecords(t *testing.T) {
	in := "Plaintext=0000000000000000\nCiphertext=1111111111111111\n" +
		"Plaintext=2222222222222222\nCiphertext=3333333333333333\n"
	c, err := LoadCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
}

func TestLoadCorpusBlankLinesIgnored(t *testing.T) {
	in := "\nPlaintext=0102030405060708\n\nCiphertext=b42ccc47b42ccc47\n\n"
	c, err := LoadCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
}

func TestLoadCorpusCaseInsensitiveHex(t *testing.T) {
	in := "Plaintext=0102030405060708\nCiphertext=B42CCC47B42CCC47\n"
	c, err := LoadCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if c.CLeft(0) != 0xb42ccc47 {
		t.Fatalf("CLeft(0) = 0x%08x, want 0xb42ccc47", c.CLeft(0))
	}
}

func TestLoadCorpusOptionalSpace(t *testing.T) {
	in := "Plaintext= 0102030405060708\nCiphertext= b42ccc47b42ccc47\n"
	c, err := LoadCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
}

func TestLoadCorpusEmptyFile(t *testing.T) {
	_, err := LoadCorpus(strings.NewReader(""))
	if err != ErrEmptyCorpus {
		t.Fatalf("LoadCorpus(empty) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestLoadCorpusOrphanCiphertext(t *testing.T) {
	in := "Ciphertext=b42ccc47b42ccc47\n"
	_, err := LoadCorpus(strings.NewReader(in))
	if err == nil {
		t.Fatalf("LoadCorpus(orphan Ciphertext=) error = nil, want non-nil")
	}
}

func TestLoadCorpusBadHexLength(t *testing.T) {
	in := "Plaintext=0102\n"
	_, err := LoadCorpus(strings.NewReader(in))
	if err == nil {
		t.Fatalf("LoadCorpus(short hex) error = nil, want non-nil")
	}
}
