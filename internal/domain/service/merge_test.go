package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rec struct {
	ID   string
	Name string
}

func recID(r rec) string { return r.ID }

func ids(rs []rec) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestMergeSeed(t *testing.T) {
	tests := []struct {
		name      string
		seed      []rec
		persisted []rec
		want      []string
	}{
		{name: "both empty", want: []string{}},
		{name: "seed only", seed: []rec{{ID: "s1"}, {ID: "s2"}}, want: []string{"s1", "s2"}},
		{name: "persisted only", persisted: []rec{{ID: "p2"}, {ID: "p1"}}, want: []string{"p2", "p1"}},
		{
			name:      "persisted copy of a seed id is dropped",
			seed:      []rec{{ID: "s1", Name: "seed"}},
			persisted: []rec{{ID: "p1"}, {ID: "s1", Name: "local"}, {ID: "p0"}},
			want:      []string{"s1", "p1", "p0"},
		},
		{
			name: "duplicate seed ids keep the first",
			seed: []rec{{ID: "s1"}, {ID: "s2"}, {ID: "s1"}},
			want: []string{"s1", "s2"},
		},
		{
			name:      "duplicate persisted ids keep the first",
			persisted: []rec{{ID: "p1"}, {ID: "p1"}},
			want:      []string{"p1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeSeed(tt.seed, tt.persisted, recID)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMergeSeedKeepsSeedValue(t *testing.T) {
	got := MergeSeed([]rec{{ID: "s1", Name: "seed"}}, []rec{{ID: "s1", Name: "local"}}, recID)
	assert.Equal(t, []rec{{ID: "s1", Name: "seed"}}, got)
}

func TestMergeSeedIsIdempotent(t *testing.T) {
	seed := []rec{{ID: "s2"}, {ID: "s1"}}
	persisted := []rec{{ID: "p9"}, {ID: "s1"}, {ID: "p3"}}

	once := MergeSeed(seed, persisted, recID)
	twice := MergeSeed(seed, once, recID)

	assert.Equal(t, ids(once), ids(twice))
	assert.Equal(t, []string{"s2", "s1", "p9", "p3"}, ids(twice))
}
