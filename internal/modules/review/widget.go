package review

import "strings"

const maxStars = 5

// Star is one clickable star of the rating widget.
type Star struct {
	Value    int
	Selected bool
}

// Widget holds the rating chosen in one review form.
type Widget struct {
	Selected int
}

func NewWidget(selected int) *Widget {
	w := &Widget{}
	w.Select(selected)
	return w
}

// Select records the clicked star. Values outside 0..5 leave the widget unselected.
func (w *Widget) Select(value int) {
	if value < 0 || value > maxStars {
		value = 0
	}
	w.Selected = value
}

// Stars marks stars 1..Selected as selected.
func (w *Widget) Stars() []Star {
	stars := make([]Star, maxStars)
	for i := range stars {
		stars[i] = Star{Value: i + 1, Selected: i+1 <= w.Selected}
	}
	return stars
}

// ConvertRatingToStars renders a rating as five filled/empty glyphs.
// Ratings above five render all five filled.
func ConvertRatingToStars(rating int) string {
	var b strings.Builder
	for i := 1; i <= maxStars; i++ {
		if i <= rating {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}
