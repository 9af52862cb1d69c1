package scrape

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// PageCourseIds returns the course ids linked from one index page, in page
// order and without repeats.
func (c *Client) PageCourseIds(ctx context.Context, page int) ([]string, error) {
	body, err := c.get(ctx, c.Config.IndexUrl(page))
	if err != nil {
		return nil, err
	}

	document, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var courseIds []string
	seen := make(map[string]bool)

	document.Find("a[href]").Each(func(i int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		submatches := c.courseIdPattern.FindStringSubmatch(href)
		if submatches == nil || seen[submatches[1]] {
			return
		}
		seen[submatches[1]] = true
		courseIds = append(courseIds, submatches[1])
	})

	return courseIds, nil
}

// CourseIds walks the index pages from the first until one lists no
// courses, or until MaxPages pages have been read.
func (c *Client) CourseIds(ctx context.Context) ([]string, error) {
	var courseIds []string
	seen := make(map[string]bool)

	for page := 1; c.Config.MaxPages == 0 || page <= c.Config.MaxPages; page++ {
		pageCourseIds, err := c.PageCourseIds(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(pageCourseIds) == 0 {
			break
		}

		for _, courseId := range pageCourseIds {
			if !seen[courseId] {
				seen[courseId] = true
				courseIds = append(courseIds, courseId)
			}
		}
		c.logger.Info("scraped index page", zap.Int("page", page), zap.Int("courses", len(pageCourseIds)))
	}

	return courseIds, nil
}
