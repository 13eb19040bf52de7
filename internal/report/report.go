// Package report renders the state of the shop's items for one day.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/osse101/GildedRose_Go/internal/category"
	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// Writer renders one day of item states
type Writer func(w io.Writer, day int, items []*domain.Item) error

// ForFormat returns the renderer for a format name
func ForFormat(format string) (Writer, error) {
	switch format {
	case FormatText:
		return Text, nil
	case FormatJSON:
		return JSON, nil
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}

// Text writes a day in the plain fixture layout:
//
//	-------- day 3 --------
//	name, sellIn, quality
//	Aged Brie, -1, 5
//
// followed by an empty line.
func Text(w io.Writer, day int, items []*domain.Item) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\n", day); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "name, sellIn, quality"); err != nil {
		return err
	}
	for _, item := range items {
		if item == nil {
			return domain.ErrNilItem
		}
		if _, err := fmt.Fprintf(w, "%s, %d, %d\n", item.Name, item.SellIn, item.Quality); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

type dayJSON struct {
	Day   int        `json:"day"`
	Items []itemJSON `json:"items"`
}

type itemJSON struct {
	Name       string            `json:"name"`
	SellIn     int               `json:"sell_in"`
	Quality    int               `json:"quality"`
	Categories domain.Categories `json:"categories"`
}

// JSON writes a day as a single JSON object on its own line
func JSON(w io.Writer, day int, items []*domain.Item) error {
	out := dayJSON{Day: day, Items: make([]itemJSON, 0, len(items))}
	for _, item := range items {
		cats, err := category.Of(item)
		if err != nil {
			return err
		}
		if cats == nil {
			cats = domain.Categories{}
		}
		out.Items = append(out.Items, itemJSON{
			Name:       item.Name,
			SellIn:     item.SellIn,
			Quality:    item.Quality,
			Categories: cats,
		})
	}
	return json.NewEncoder(w).Encode(out)
}
