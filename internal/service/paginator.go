package service

import (
	"strconv"

	"yatube/internal/model"
)

// Page is one slice of the post list plus the numbers the templates
// need to draw pagination controls.
type Page struct {
	Items    []model.Post
	Number   int
	NumPages int
	Total    int64
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.NumPages }
func (p Page) PrevPageNumber() int {
	return p.Number - 1
}
func (p Page) NextPageNumber() int {
	return p.Number + 1
}

// resolvePage clamps a requested page to the valid range. A missing or
// non-numeric value means page 1; past-the-end values land on the last
// page.
func resolvePage(requested string, total int64, size int) (number, numPages, offset int) {
	numPages = int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}
	number, err := strconv.Atoi(requested)
	if err != nil || number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	offset = (number - 1) * size
	return number, numPages, offset
}
