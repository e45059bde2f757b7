// Package feed turns RSS/Atom documents into raw, not yet normalized articles.
package feed

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/riverfjs/journaltex-go/internal/types"
)

// Parse 解析一个 RSS/Atom 文档
//
// journal 为空时使用 feed 自身的标题。没有日期的条目使用零值时间。
func Parse(r io.Reader, journal string) ([]types.RawArticle, error) {
	fp := gofeed.NewParser()
	f, err := fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	if journal == "" {
		journal = strings.TrimSpace(f.Title)
	}

	articles := make([]types.RawArticle, 0, len(f.Items))
	for _, item := range f.Items {
		articles = append(articles, types.RawArticle{
			Title:   strings.ReplaceAll(item.Title, "\n", ""),
			URL:     item.Link,
			Date:    itemDate(item),
			Authors: itemAuthors(item),
			Summary: itemSummary(item),
			Journal: journal,
		})
	}
	return articles, nil
}

// ParseFile parses the feed stored at path.
func ParseFile(path, journal string) ([]types.RawArticle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	articles, err := Parse(file, journal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return articles, nil
}

func itemDate(item *gofeed.Item) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return *item.PublishedParsed
	case item.UpdatedParsed != nil:
		return *item.UpdatedParsed
	default:
		return time.Time{}
	}
}

func itemAuthors(item *gofeed.Item) []string {
	people := item.Authors
	if len(people) == 0 && item.Author != nil {
		people = []*gofeed.Person{item.Author}
	}
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p == nil {
			continue
		}
		if name := strings.TrimSpace(p.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func itemSummary(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}
