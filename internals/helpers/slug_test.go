package helper

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nama biasa", "Pondok Pesantren Al-Hikmah", "pondok-pesantren-al-hikmah"},
		{"spasi ganda & simbol", "  TPQ   An-Nur!!  ", "tpq-an-nur"},
		{"angka dipertahankan", "Kelas Tahfidz 2", "kelas-tahfidz-2"},
		{"semua simbol", "---!!!---", ""},
		{"sudah slug", "masjid-raya", "masjid-raya"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateSlugMaxLen(t *testing.T) {
	long := strings.Repeat("a", DefaultSlugMaxLen+50)
	got := GenerateSlug(long)
	if len(got) > DefaultSlugMaxLen {
		t.Errorf("panjang slug %d melebihi batas %d", len(got), DefaultSlugMaxLen)
	}
}
