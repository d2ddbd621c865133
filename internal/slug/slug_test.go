package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Türkenschanzpark", "tuerkenschanzpark"},
		{"  Stadt Park! ", "stadt-park"},
		{"Pötzleinsdorfer Schlosspark", "poetzleinsdorfer-schlosspark"},
		{"Straße", "strasse"},
		{"Prater: Jesuitenwiese", "prater-jesuitenwiese"},
		{"Park 1220 -- Nord", "park-1220-nord"},
		{"ÄÖÜ", "aeoeue"},
		{"Tu\u0308rkenschanzpark", "tuerkenschanzpark"},
		{"", ""},
		{"---", ""},
		{"Émile", "mile"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{"Türkenschanzpark", "  Stadt Park! ", "Pa Löwygrube", "a--b", "Wasserpark (Floridsdorf)"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), in)
	}
}
