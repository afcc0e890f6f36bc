package engine

import (
	"testing"

	"campusfaq/internal/model"

	"github.com/stretchr/testify/assert"
)

func faq(question string, keywords []string, category model.Category) *model.FAQEntry {
	return &model.FAQEntry{
		Question: question,
		Answer:   "answer for " + question,
		Keywords: keywords,
		Category: category,
		IsActive: true,
	}
}

func TestScore(t *testing.T) {
	w := DefaultWeights()

	t.Run("exact match stacks with containment and overlap", func(t *testing.T) {
		e := faq("Library opening hours", nil, model.CategoryFacility)
		// 50 exact + 20 + 15 containment both ways + 10 full token overlap
		assert.InDelta(t, 95, Score("library opening hours", e, w), 1e-9)
	})

	t.Run("query containing the question", func(t *testing.T) {
		e := faq("hostel rules", nil, "")
		// 20 containment + 2/5 token overlap
		assert.InDelta(t, 24, Score("tell me about hostel rules please", e, w), 1e-9)
	})

	t.Run("question containing the query", func(t *testing.T) {
		e := faq("What is the admission process", nil, "")
		// 15 containment + 1/1 token overlap
		assert.InDelta(t, 25, Score("admission", e, w), 1e-9)
	})

	t.Run("keyword bonus grows with length up to the cap", func(t *testing.T) {
		short := faq("Aaa bbb", []string{"fee"}, "")
		long := faq("Aaa bbb", []string{"scholarship"}, "")
		// 5 + len/2: "fee" gives 6.5, "scholarship" caps at 10 plus the
		// compound-part bonus of 2 for keywords longer than five characters
		assert.InDelta(t, 6.5, Score("fee waiver", short, w), 1e-9)
		assert.InDelta(t, 12, Score("scholarship query", long, w), 1e-9)
	})

	t.Run("compound keyword scores on a partial hit", func(t *testing.T) {
		e := faq("Aaa bbb", []string{"hostel rooms"}, "")
		assert.InDelta(t, 2, Score("anything about rooms", e, w), 1e-9)
	})

	t.Run("category mention", func(t *testing.T) {
		e := faq("Www zzz", nil, model.CategoryHostel)
		assert.InDelta(t, 5, Score("hostel timing", e, w), 1e-9)
	})

	t.Run("empty category contributes nothing", func(t *testing.T) {
		e := faq("Www zzz", nil, "")
		assert.Zero(t, Score("hostel timing", e, w))
	})

	t.Run("empty keyword list only loses the keyword signal", func(t *testing.T) {
		e := faq("exam schedule", nil, "")
		assert.InDelta(t, 95, Score("exam schedule", e, w), 1e-9)
	})

	t.Run("more shared tokens never score lower", func(t *testing.T) {
		e := faq("hostel mess menu details", nil, "")
		one := Score("menu zebra", e, w)
		two := Score("menu details zebra", e, w)
		assert.Greater(t, two, one)
	})

	t.Run("unrelated query scores zero", func(t *testing.T) {
		e := faq("What courses are offered", []string{"courses"}, model.CategoryCourses)
		assert.Zero(t, Score("zzzqqqxxx", e, w))
	})
}
