package goquery_test

import (
	"testing"

	"github.com/fwojciec/coursegen"
	"github.com/fwojciec/coursegen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionLister_ListSections(t *testing.T) {
	t.Parallel()

	t.Run("lists sections with ids and their headings", func(t *testing.T) {
		t.Parallel()

		doc := []byte(`<!DOCTYPE html>
<html>
<body>
<nav><a href="#schedule">Schedule</a></nav>
<section id="about"><h2>About
  the Course</h2><p>Text</p></section>
<section id="schedule"><h2>Schedule</h2><h3>Spring</h3></section>
<section><h2>Anonymous</h2></section>
<section id="readings"><p>No heading</p></section>
</body>
</html>`)

		sections, err := goquery.NewSectionLister().ListSections(doc)

		require.NoError(t, err)
		assert.Equal(t, []coursegen.Section{
			{ID: "about", Title: "About the Course"},
			{ID: "schedule", Title: "Schedule"},
			{ID: "readings", Title: ""},
		}, sections)
	})

	t.Run("returns nothing for a document without sections", func(t *testing.T) {
		t.Parallel()

		sections, err := goquery.NewSectionLister().ListSections([]byte(`<p>hello</p>`))

		require.NoError(t, err)
		assert.Empty(t, sections)
	})

	t.Run("skips blank ids", func(t *testing.T) {
		t.Parallel()

		sections, err := goquery.NewSectionLister().ListSections([]byte(`<section id=" "><h2>x</h2></section>`))

		require.NoError(t, err)
		assert.Empty(t, sections)
	})
}
