package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crawlkit/catalogpress/internal/table"
)

func TestCombineImages(t *testing.T) {
	cols := []string{"image_1", "image_2", "detail_image_1"}

	t.Run("duplicates suppressed, order preserved", func(t *testing.T) {
		row := table.Row{
			"image_1":        "http://a",
			"image_2":        "http://a",
			"detail_image_1": "http://b",
		}
		images, count := CombineImages(row, cols)
		assert.Equal(t, `["http://a","http://b"]`, images)
		assert.Equal(t, 2, count)
	})

	t.Run("candidate order wins over row layout", func(t *testing.T) {
		row := table.Row{
			"detail_image_1": "http://z",
			"image_2":        "http://a",
		}
		images, count := CombineImages(row, cols)
		assert.Equal(t, `["http://a","http://z"]`, images)
		assert.Equal(t, 2, count)
	})

	t.Run("blank and missing fields yield null", func(t *testing.T) {
		images, count := CombineImages(table.Row{"image_1": "   "}, cols)
		assert.Empty(t, images)
		assert.Zero(t, count)

		images, count = CombineImages(table.Row{}, cols)
		assert.Empty(t, images)
		assert.Zero(t, count)
	})

	t.Run("values trimmed before comparison", func(t *testing.T) {
		row := table.Row{
			"image_1": " http://a ",
			"image_2": "http://a",
		}
		images, count := CombineImages(row, cols)
		assert.Equal(t, `["http://a"]`, images)
		assert.Equal(t, 1, count)
	})

	t.Run("query separators not escaped", func(t *testing.T) {
		row := table.Row{"image_1": "http://cdn.example.com/p.jpg?w=800&h=600"}
		images, _ := CombineImages(row, cols)
		assert.Equal(t, `["http://cdn.example.com/p.jpg?w=800&h=600"]`, images)
	})
}
