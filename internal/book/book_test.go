package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_AddComment(t *testing.T) {
	b := New("Dune")
	assert.Equal(t, 0, b.CommentCount)
	assert.Empty(t, b.Comments)

	b.AddComment("spice")
	b.AddComment("spice")

	assert.Equal(t, []string{"spice", "spice"}, b.Comments)
	assert.Equal(t, len(b.Comments), b.CommentCount)
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"invalidId", false},
		{"", false},
		{"3f2b9a4e-1c2d-4e5f-8a9b-0c1d2e3f4a5b", true},
		{"3F2B9A4E-1C2D-4E5F-8A9B-0C1D2E3F4A5B", true},
		{"3f2b9a4e1c2d4e5f8a9b0c1d2e3f4a5b", false},
		{"{3f2b9a4e-1c2d-4e5f-8a9b-0c1d2e3f4a5b}", false},
		{"3f2b9a4e-1c2d-4e5f-8a9b-0c1d2e3f4a5z", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.id))
		})
	}
	assert.True(t, ValidID(NewID()))
}

func TestProjections(t *testing.T) {
	b := Book{ID: "id-1", Title: "Emma"}

	t.Run("summary", func(t *testing.T) {
		raw, err := json.Marshal(b.Summary())
		require.NoError(t, err)
		assert.JSONEq(t, `{"_id":"id-1","title":"Emma","comments":[],"commentcount":0}`, string(raw))
	})

	t.Run("detail has no comment count", func(t *testing.T) {
		raw, err := json.Marshal(b.Detail())
		require.NoError(t, err)
		assert.JSONEq(t, `{"_id":"id-1","title":"Emma","comments":[]}`, string(raw))
	})

	t.Run("created", func(t *testing.T) {
		raw, err := json.Marshal(Created{Title: "Emma", ID: "id-1"})
		require.NoError(t, err)
		assert.Equal(t, `{"title":"Emma","_id":"id-1"}`, string(raw))
	})
}

func TestDiagnostic(t *testing.T) {
	var err error = ErrNoBook
	assert.Equal(t, "no book exists", err.Error())
	assert.Equal(t, "missing required field title", ErrMissingTitle.Error())
	assert.Equal(t, "missing required field comment", ErrMissingComment.Error())
}
